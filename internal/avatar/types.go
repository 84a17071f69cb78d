package avatar

import "fmt"

// Attributes is the full set of tunable character attributes. It is a plain
// value: every mutation produces a new Attributes rather than editing one in
// place.
type Attributes struct {
	Base     int `json:"base"` // 1 = has hair
	Face     int `json:"face"`
	FaceItem int `json:"faceItem"`
	Hair     int `json:"hair"`
	Pants    int `json:"pants"`
	Shirt    int `json:"shirt"`
	Skin     int `json:"skin"`
	HatColor int `json:"hatColor"`

	Hat  string `json:"hat"`
	Size int    `json:"size"` // display scale in px, never persisted

	Fire    bool `json:"fire"`
	Walking bool `json:"walking"`
	Circle  bool `json:"circle"`
}

// State is what readers (the renderer, the input widgets) see: the attributes
// together with the seed and shareable URL derived from them.
type State struct {
	Attributes
	Seed string `json:"seed"`
	URL  string `json:"url"`
}

const (
	DefaultHat  = "none"
	DefaultSize = 360
)

// DefaultAttributes returns the attributes a fresh customizer starts from.
func DefaultAttributes() Attributes {
	return Attributes{
		Hat:  DefaultHat,
		Size: DefaultSize,
	}
}

// HatColorCSS is the hat colour as the renderer consumes it.
func (a Attributes) HatColorCSS() string {
	return fmt.Sprintf("hsl(%d, 100%%, 50%%)", a.HatColor)
}

// ShowHairColor reports whether the hair colour control applies.
func (a Attributes) ShowHairColor() bool {
	return a.Base == 1
}

// Field names one independently mutable attribute.
type Field string

const (
	FieldBase     Field = "base"
	FieldFace     Field = "face"
	FieldFaceItem Field = "faceItem"
	FieldHair     Field = "hair"
	FieldPants    Field = "pants"
	FieldShirt    Field = "shirt"
	FieldSkin     Field = "skin"
	FieldHatColor Field = "hatColor"
	FieldHat      Field = "hat"
	FieldSize     Field = "size"
	FieldFire     Field = "fire"
	FieldWalking  Field = "walking"
	FieldCircle   Field = "circle"
)

// SeedFields lists the numeric fields in seed digit order.
var SeedFields = [SeedLen]Field{
	FieldBase, FieldFace, FieldFaceItem, FieldHair,
	FieldPants, FieldShirt, FieldSkin, FieldHatColor,
}

// ParseField resolves a field name as sent by an input widget. The lowercase
// "faceitem" spelling is accepted as well.
func ParseField(name string) (Field, bool) {
	if name == "faceitem" {
		return FieldFaceItem, true
	}
	f := Field(name)
	switch f {
	case FieldBase, FieldFace, FieldFaceItem, FieldHair, FieldPants, FieldShirt,
		FieldSkin, FieldHatColor, FieldHat, FieldSize, FieldFire, FieldWalking, FieldCircle:
		return f, true
	}
	return "", false
}

func (f Field) numeric() bool {
	switch f {
	case FieldBase, FieldFace, FieldFaceItem, FieldHair, FieldPants, FieldShirt,
		FieldSkin, FieldHatColor, FieldSize:
		return true
	}
	return false
}

// Int returns the value of a numeric field, 0 for any other field.
func (a Attributes) Int(f Field) int {
	return getInt(a, f)
}

func getInt(a Attributes, f Field) int {
	switch f {
	case FieldBase:
		return a.Base
	case FieldFace:
		return a.Face
	case FieldFaceItem:
		return a.FaceItem
	case FieldHair:
		return a.Hair
	case FieldPants:
		return a.Pants
	case FieldShirt:
		return a.Shirt
	case FieldSkin:
		return a.Skin
	case FieldHatColor:
		return a.HatColor
	case FieldSize:
		return a.Size
	default:
		return 0
	}
}

func setInt(a *Attributes, f Field, v int) {
	switch f {
	case FieldBase:
		a.Base = v
	case FieldFace:
		a.Face = v
	case FieldFaceItem:
		a.FaceItem = v
	case FieldHair:
		a.Hair = v
	case FieldPants:
		a.Pants = v
	case FieldShirt:
		a.Shirt = v
	case FieldSkin:
		a.Skin = v
	case FieldHatColor:
		a.HatColor = v
	case FieldSize:
		a.Size = v
	}
}

func setBool(a *Attributes, f Field, v bool) {
	switch f {
	case FieldFire:
		a.Fire = v
	case FieldWalking:
		a.Walking = v
	case FieldCircle:
		a.Circle = v
	}
}
