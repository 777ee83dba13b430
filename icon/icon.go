// Package icon provides a multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji or plain ASCII depending on user preference.
// Plain decorations render as the empty string so labels stand on their own.
package icon

import (
	"github.com/cinemcp/cinemcp/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, plain}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Movie Icon = iota + 1
	Plot
	Genre
	Rating
	Runtime
	Director
	Cast
	Language
	Country
	Awards
	BoxOffice
	Link
	Source
	Poster
	Hint
	Target
	Fire
	Fail
	Success
	Stop
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	plain string
}

// Get retrieves the visual representation for the receiver based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Movie:     {emoji: "🎬"},
	Plot:      {emoji: "📝"},
	Genre:     {emoji: "🎭"},
	Rating:    {emoji: "⭐"},
	Runtime:   {emoji: "⏱️"},
	Director:  {emoji: "🎬"},
	Cast:      {emoji: "👥"},
	Language:  {emoji: "🌍"},
	Country:   {emoji: "🏴"},
	Awards:    {emoji: "🏆"},
	BoxOffice: {emoji: "💰"},
	Link:      {emoji: "🔗"},
	Source:    {emoji: "📊"},
	Poster:    {emoji: "🖼️"},
	Hint:      {emoji: "💡"},
	Target:    {emoji: "🎯"},
	Fire:      {emoji: "🔥"},
	Fail:      {emoji: "❌", plain: "x"},
	Success:   {emoji: "✅", plain: "+"},
	Stop:      {emoji: "🛑", plain: "!"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}

// Prefix returns the icon followed by a space, or nothing when the icon renders empty.
func Prefix(i Icon) string {
	if s := Get(i); s != "" {
		return s + " "
	}
	return ""
}
