package web

import (
	"strconv"

	"rpgme/internal/avatar"
)

// SliderViewModel is one numeric control.
type SliderViewModel struct {
	Field avatar.Field
	Label string
	Value int
	Min   int
	Max   int
}

// ToggleViewModel is one checkbox control. Next is the value a click sends.
type ToggleViewModel struct {
	Field   avatar.Field
	Label   string
	Checked bool
	Next    string
}

// CustomizerViewModel contains data for rendering the customizer and the
// character preview.
type CustomizerViewModel struct {
	State            avatar.State
	Zoom             SliderViewModel
	Sliders          []SliderViewModel // in display order, hair colour only with hair
	Toggles          []ToggleViewModel
	Hats             []avatar.HatOption
	ShareXURL        string
	ShareLinkedInURL string
	Message          string
}

var sliderLabels = []struct {
	field avatar.Field
	label string
}{
	{avatar.FieldSkin, "Skin"},
	{avatar.FieldFace, "Face"},
	{avatar.FieldFaceItem, "Face Accessory"},
	{avatar.FieldShirt, "Shirt"},
	{avatar.FieldPants, "Pants"},
	{avatar.FieldHatColor, "Hat Color"},
	{avatar.FieldHair, "Hair Color"},
}

func (s *Server) slider(st avatar.State, f avatar.Field, label string) SliderViewModel {
	r, _ := s.Catalog.Range(f)
	return SliderViewModel{
		Field: f,
		Label: label,
		Value: st.Int(f),
		Min:   r.Min,
		Max:   r.Max,
	}
}

func (s *Server) makeViewModel(st avatar.State, msg string) CustomizerViewModel {
	vm := CustomizerViewModel{
		State:            st,
		Zoom:             s.slider(st, avatar.FieldSize, "Zoom"),
		Hats:             s.Catalog.HatOptions(),
		ShareXURL:        avatar.ShareOnX(st.URL, s.ShareText),
		ShareLinkedInURL: avatar.ShareOnLinkedIn(st.URL),
		Message:          msg,
	}
	for _, sl := range sliderLabels {
		if sl.field == avatar.FieldHair && !st.ShowHairColor() {
			continue
		}
		vm.Sliders = append(vm.Sliders, s.slider(st, sl.field, sl.label))
	}
	vm.Toggles = []ToggleViewModel{
		{Field: avatar.FieldBase, Label: "Hair", Checked: st.Base == 1, Next: strconv.Itoa(1 - st.Base)},
		toggle(avatar.FieldWalking, "Walking", st.Walking),
		toggle(avatar.FieldFire, "On Fire", st.Fire),
		toggle(avatar.FieldCircle, "Circle Frame", st.Circle),
	}
	return vm
}

func toggle(f avatar.Field, label string, on bool) ToggleViewModel {
	return ToggleViewModel{Field: f, Label: label, Checked: on, Next: strconv.FormatBool(!on)}
}
