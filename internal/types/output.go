package types

// OutputFormat selects how a distribution record is rendered.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)

// DistroField is one field a caller can ask to display.
type DistroField string

const (
	FieldModules     DistroField = "modules"
	FieldID          DistroField = "id"
	FieldDescription DistroField = "description"
	FieldRelease     DistroField = "release"
	FieldCodename    DistroField = "codename"
)

// DistroView is a selection of fields from a resolved record ready to
// be written out.
type DistroView struct {
	Info    DistroInfo
	Modules []string
	Fields  []DistroField
	Short   bool
	Format  OutputFormat
}
