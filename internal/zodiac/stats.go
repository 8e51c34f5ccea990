package zodiac

// Field names one player-supplied stat.
type Field string

const (
	FieldRarity  Field = "rarity"
	FieldQuality Field = "quality"
	FieldLevel   Field = "level"
	FieldLuck    Field = "luck"
)

// StatInput carries the optional stats for one calculation.
// A nil field means the player skipped it.
type StatInput struct {
	Rarity  *float64
	Quality *float64
	Level   *float64
	Luck    *float64
}

// Stat is a small helper for building a StatInput from literals.
func Stat(v float64) *float64 { return &v }

func (in StatInput) get(f Field) *float64 {
	switch f {
	case FieldRarity:
		return in.Rarity
	case FieldQuality:
		return in.Quality
	case FieldLevel:
		return in.Level
	case FieldLuck:
		return in.Luck
	}
	return nil
}

// Provided reports how many stats are set.
func (in StatInput) Provided() int {
	n := 0
	for _, f := range []Field{FieldRarity, FieldQuality, FieldLevel, FieldLuck} {
		if in.get(f) != nil {
			n++
		}
	}
	return n
}

// require returns a *MissingInputError naming every absent field, or nil.
func (in StatInput) require(op string, fields ...Field) error {
	var missing []Field
	for _, f := range fields {
		if in.get(f) == nil {
			missing = append(missing, f)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &MissingInputError{Op: op, Fields: missing}
}

// Required stat sets per calculator.
var (
	salePriceFields     = []Field{FieldRarity, FieldQuality, FieldLevel}
	enhancePriceFields  = []Field{FieldRarity, FieldQuality, FieldLevel}
	enhanceChanceFields = []Field{FieldQuality}
	scoreFields         = []Field{FieldRarity, FieldQuality, FieldLevel}
	luckFields          = []Field{FieldLuck}
)
