// Package constant defines immutable application-level identifiers and build metadata.
package constant

// Custom rule identifiers - the globals a Lua harmony rule script may define.
const (
	RuleOffsetsFn      = "Offsets"
	RuleDescriptionVar = "Description"
)

// RuleTemplate is a Go text/template for scaffolding new Lua harmony rules.
const RuleTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


----- VARIABLES -----

{{ .DescriptionVar }} = "Describe how the hues relate to each other"

--- END VARIABLES ---



----- MAIN -----

--- Returns the hue offsets, in degrees, relative to the base hue.
-- The first offset is usually 0 so the base color leads the palette.
-- @return number[] Table of offsets
function {{ .OffsetsFn }}()
	return { 0, 180 }
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
