package aifill

import (
	"encoding/json"
	"sort"
)

// Recognized form field names, as they appear in the attribution set.
const (
	FieldName          = "name"
	FieldBreed         = "breed"
	FieldStoreName     = "store_name"
	FieldBirthday      = "birthday"
	FieldPrice         = "price"
	FieldDescription   = "description"
	FieldCatcafeStatus = "catcafe_status"
	FieldVisible       = "visible"
)

// Fields lists the recognized field names in merge order.
var Fields = []string{
	FieldName, FieldBreed, FieldStoreName, FieldBirthday,
	FieldPrice, FieldDescription, FieldCatcafeStatus, FieldVisible,
}

// FormValues is the editable state of a cat form.
type FormValues struct {
	Name          string   `json:"name"`
	Breed         string   `json:"breed"`
	StoreName     string   `json:"store_name"`
	Birthday      string   `json:"birthday"`
	Price         *float64 `json:"price"`
	Description   string   `json:"description"`
	CatcafeStatus string   `json:"catcafe_status"`
	Visible       bool     `json:"visible"`
	Images        []string `json:"images"`
	Thumbnail     string   `json:"thumbnail"`
}

func (v FormValues) clone() FormValues {
	out := v
	if v.Price != nil {
		p := *v.Price
		out.Price = &p
	}
	out.Images = append([]string(nil), v.Images...)
	return out
}

// FieldSet is a set of form field names.
type FieldSet map[string]struct{}

// Has reports whether name is in the set.
func (s FieldSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members in sorted order.
func (s FieldSet) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s FieldSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

func (s FieldSet) clone() FieldSet {
	out := make(FieldSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Form holds form values together with the set of fields whose current
// value came from extraction rather than from a person. Form is not safe
// for concurrent use; the owner serializes access.
type Form struct {
	defaults    FormValues
	values      FormValues
	attribution FieldSet
}

// NewForm opens a form initialised to defaults with an empty attribution set.
func NewForm(defaults FormValues) *Form {
	return &Form{
		defaults:    defaults.clone(),
		values:      defaults.clone(),
		attribution: FieldSet{},
	}
}

// Values returns a copy of the current values.
func (f *Form) Values() FormValues {
	return f.values.clone()
}

// Attribution returns a copy of the extraction-attributed field set.
func (f *Form) Attribution() FieldSet {
	return f.attribution.clone()
}

// Merge writes every non-null field of out into the form and marks it as
// extraction-attributed. Null fields leave the form untouched. All writes
// complete before the resulting attribution set is returned.
func (f *Form) Merge(out *Output) FieldSet {
	if out == nil {
		return f.Attribution()
	}
	set := func(field string) { f.attribution[field] = struct{}{} }

	if out.Name != nil {
		f.values.Name = *out.Name
		set(FieldName)
	}
	if out.Breed != nil {
		f.values.Breed = *out.Breed
		set(FieldBreed)
	}
	if out.StoreName != nil {
		f.values.StoreName = *out.StoreName
		set(FieldStoreName)
	}
	if out.Birthday != nil {
		f.values.Birthday = *out.Birthday
		set(FieldBirthday)
	}
	if out.Price != nil {
		p := *out.Price
		f.values.Price = &p
		set(FieldPrice)
	}
	if out.Description != nil {
		f.values.Description = *out.Description
		set(FieldDescription)
	}
	if out.CatcafeStatus != nil {
		f.values.CatcafeStatus = *out.CatcafeStatus
		set(FieldCatcafeStatus)
	}
	if out.Visible != nil {
		f.values.Visible = *out.Visible
		set(FieldVisible)
	}
	return f.Attribution()
}

// Edit is a partial, user-authored change to the form. Nil fields are not touched.
type Edit struct {
	Name          *string   `json:"name"`
	Breed         *string   `json:"breed"`
	StoreName     *string   `json:"store_name"`
	Birthday      *string   `json:"birthday"`
	Price         *float64  `json:"price"`
	Description   *string   `json:"description"`
	CatcafeStatus *string   `json:"catcafe_status"`
	Visible       *bool     `json:"visible"`
	Images        *[]string `json:"images"`
	Thumbnail     *string   `json:"thumbnail"`
}

// Apply writes a user edit. Edited fields stop being extraction-attributed.
func (f *Form) Apply(e Edit) {
	human := func(field string) { delete(f.attribution, field) }

	if e.Name != nil {
		f.values.Name = *e.Name
		human(FieldName)
	}
	if e.Breed != nil {
		f.values.Breed = *e.Breed
		human(FieldBreed)
	}
	if e.StoreName != nil {
		f.values.StoreName = *e.StoreName
		human(FieldStoreName)
	}
	if e.Birthday != nil {
		f.values.Birthday = *e.Birthday
		human(FieldBirthday)
	}
	if e.Price != nil {
		p := *e.Price
		f.values.Price = &p
		human(FieldPrice)
	}
	if e.Description != nil {
		f.values.Description = *e.Description
		human(FieldDescription)
	}
	if e.CatcafeStatus != nil {
		f.values.CatcafeStatus = *e.CatcafeStatus
		human(FieldCatcafeStatus)
	}
	if e.Visible != nil {
		f.values.Visible = *e.Visible
		human(FieldVisible)
	}
	if e.Images != nil {
		f.values.Images = append([]string(nil), (*e.Images)...)
	}
	if e.Thumbnail != nil {
		f.values.Thumbnail = *e.Thumbnail
	}
}

// Reset restores the values the form was opened with and clears the
// attribution set. It is a whole-form reset, not a per-field undo.
func (f *Form) Reset() {
	f.values = f.defaults.clone()
	f.attribution = FieldSet{}
}
