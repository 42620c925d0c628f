package constants

// InstructionsText is shown on the bar below the canvas
const InstructionsText = "(q)uit |" +
	" left, right: move umbrella |" +
	" up, down: open or close umbrella"

// OpenUmbrellaArt is the open umbrella glyph, leading spaces are padding
const OpenUmbrellaArt = `     .
    _|_
 .-'   '-.
/         \
^^^^^|^^^^^
     |
   \_/`

// ClosedUmbrellaArt is the closed umbrella glyph
const ClosedUmbrellaArt = `     .
     |
    / \
    | |
    | |
    ^|^
   \_/`
