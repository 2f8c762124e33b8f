/*
Package console implements the user-facing adapters of the game.

Both displays satisfy ports.Display and ports.AdminPrompter:

  - TextDisplay: Interactive terminal play with colors (termenv), optional
    markdown rendering of the rules and gallows drawings.
  - JSONDisplay: JSON Lines events for headless or scripted play. Every event
    whose type ends in "_request" expects one answer line.

Input lines are sanitized (size limit, UTF-8, control characters) before they
reach the session loop.
*/
package console
