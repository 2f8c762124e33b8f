/*
Package ports defines the driven ports (interfaces) of the hangman game.

These interfaces decouple the game logic from external implementations, allowing
the session loop to work with various word stores and user interfaces.

# Key Interfaces

  - WordStore: Responsible for loading and appending word entries (e.g., File, Memory or Redis).
  - WordSource: Validated loading, random selection and appending over a WordStore.
  - Picker: Random index selection, injected so rounds can be replayed with a fixed seed.
  - Display: Renders the round state and reads guesses (e.g., Text or JSON).
  - AdminPrompter: Drives the mode menu and the word-admin flow.
*/
package ports
