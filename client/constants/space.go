// Package constants holds the closed enumerations shared with the backend.
// Codes are stable wire values; labels are presentation only and are looked
// up per locale.
package constants

import "fmt"

// Locale selects the label table.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// DefaultLocale is the label locale the web pages use.
const DefaultLocale = LocaleZH

// SpaceLevel is the capacity tier of a space.
type SpaceLevel int

const (
	SpaceLevelCommon       SpaceLevel = 0
	SpaceLevelProfessional SpaceLevel = 1
	SpaceLevelFlagship     SpaceLevel = 2
)

var spaceLevelLabels = map[Locale]map[SpaceLevel]string{
	LocaleZH: {
		SpaceLevelCommon:       "普通版",
		SpaceLevelProfessional: "专业版",
		SpaceLevelFlagship:     "旗舰版",
	},
	LocaleEN: {
		SpaceLevelCommon:       "Common",
		SpaceLevelProfessional: "Professional",
		SpaceLevelFlagship:     "Flagship",
	},
}

// SpaceLevels lists every level in code order.
func SpaceLevels() []SpaceLevel {
	return []SpaceLevel{SpaceLevelCommon, SpaceLevelProfessional, SpaceLevelFlagship}
}

// Valid reports whether l is a known level.
func (l SpaceLevel) Valid() bool {
	_, ok := spaceLevelLabels[DefaultLocale][l]
	return ok
}

// Label returns the display text of l in locale, falling back to DefaultLocale.
func (l SpaceLevel) Label(locale Locale) string {
	return label(spaceLevelLabels, locale, l)
}

func (l SpaceLevel) String() string {
	if s, ok := spaceLevelLabels[LocaleEN][l]; ok {
		return s
	}
	return fmt.Sprintf("SpaceLevel(%d)", int(l))
}

// Option is one entry of a select control.
type Option struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// SpaceLevelOptions returns the level select entries in code order.
func SpaceLevelOptions(locale Locale) []Option {
	levels := SpaceLevels()
	out := make([]Option, 0, len(levels))
	for _, l := range levels {
		out = append(out, Option{Label: l.Label(locale), Value: int(l)})
	}
	return out
}

// SpaceType distinguishes private spaces from future shared ones.
type SpaceType int

const SpaceTypePrivate SpaceType = 0

var spaceTypeLabels = map[Locale]map[SpaceType]string{
	LocaleZH: {SpaceTypePrivate: "私有空间"},
	LocaleEN: {SpaceTypePrivate: "Private space"},
}

// SpaceTypes lists every type in code order.
func SpaceTypes() []SpaceType { return []SpaceType{SpaceTypePrivate} }

// Valid reports whether t is a known type.
func (t SpaceType) Valid() bool {
	_, ok := spaceTypeLabels[DefaultLocale][t]
	return ok
}

// Label returns the display text of t in locale, falling back to DefaultLocale.
func (t SpaceType) Label(locale Locale) string {
	return label(spaceTypeLabels, locale, t)
}

func (t SpaceType) String() string {
	if s, ok := spaceTypeLabels[LocaleEN][t]; ok {
		return s
	}
	return fmt.Sprintf("SpaceType(%d)", int(t))
}

// Space permissions granted to space members.
const (
	PermSpaceUserManage = "spaceUser:manage"
	PermPictureView     = "picture:view"
	PermPictureUpload   = "picture:upload"
	PermPictureEdit     = "picture:edit"
	PermPictureDelete   = "picture:delete"
)

// SpacePermissions lists every permission string.
func SpacePermissions() []string {
	return []string{PermSpaceUserManage, PermPictureView, PermPictureUpload, PermPictureEdit, PermPictureDelete}
}

func label[K comparable](tables map[Locale]map[K]string, locale Locale, k K) string {
	if s, ok := tables[locale][k]; ok {
		return s
	}
	return tables[DefaultLocale][k]
}
