package deck

// EMU is an English Metric Unit, the native length unit of OOXML
// documents. 914400 EMU per inch.
type EMU int64

const emuPerInch = 914400

// Inches converts a length in inches to EMU.
func Inches(in float64) EMU {
	return EMU(in * emuPerInch)
}

// Widescreen 16:9 canvas, fixed for every deck.
var (
	CanvasWidth  = Inches(13.33)
	CanvasHeight = Inches(7.5)
)

// Color is a hex RRGGBB color without the leading #.
type Color string

// Deck palette: deep navy with gold accents.
const (
	Navy      Color = "0D2B55" // backgrounds, title bars
	Gold      Color = "C9A02C" // accents, highlights
	White     Color = "FFFFFF"
	LightGrey Color = "F2F4F8"
	Green     Color = "1A7A4A" // correct-answer reveal
	Red       Color = "B31B1B" // wrong / FALSE
	SteelBlue Color = "1A4A7A" // choice pills
	MutedGrey Color = "CCCCCC" // greyed-out distractors
	ScoreCell Color = "1A3A6A" // score tracker cells
)
