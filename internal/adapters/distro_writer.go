package adapters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"lsb-release/internal/ports"
	"lsb-release/internal/types"
)

const (
	notAvailable      = "n/a"
	NoModulesMessage  = "No LSB modules are available."
	moduleSeparator   = ":"
	shortValueDivider = " "
)

var fieldLabels = map[types.DistroField]string{
	types.FieldModules:     "LSB Version",
	types.FieldID:          "Distributor ID",
	types.FieldDescription: "Description",
	types.FieldRelease:     "Release",
	types.FieldCodename:    "Codename",
}

// distroDocument is the YAML rendering of a DistroView.
type distroDocument struct {
	LSBVersion  []string          `yaml:"lsb_version,omitempty"`
	ID          string            `yaml:"distributor_id,omitempty"`
	Description string            `yaml:"description,omitempty"`
	Release     string            `yaml:"release,omitempty"`
	Codename    string            `yaml:"codename,omitempty"`
	Extra       map[string]string `yaml:"extra,omitempty"`
}

type DistroInfoWriterAdapter struct{}

func NewDistroInfoWriterAdapter() DistroInfoWriterAdapter {
	return DistroInfoWriterAdapter{}
}

func (a DistroInfoWriterAdapter) WriteDistroInfo(w io.Writer, view types.DistroView) error {
	switch view.Format {
	case types.OutputFormatText, "":
		return writeText(w, view)
	case types.OutputFormatYAML:
		return writeYAML(w, view)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format %q", view.Format))
	}
}

func writeText(w io.Writer, view types.DistroView) error {
	var lines []string
	var short []string
	for _, field := range view.Fields {
		value, present := fieldValue(view, field)
		if view.Short {
			short = append(short, value)
			continue
		}
		if field == types.FieldModules && !present {
			lines = append(lines, NoModulesMessage)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s:\t%s", fieldLabels[field], value))
	}
	if view.Short && len(short) > 0 {
		lines = append(lines, strings.Join(short, shortValueDivider))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write distribution info").
				WithCause(err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, view types.DistroView) error {
	doc := distroDocument{}
	for _, field := range view.Fields {
		switch field {
		case types.FieldModules:
			doc.LSBVersion = view.Modules
		case types.FieldID:
			doc.ID = view.Info.ID
		case types.FieldDescription:
			doc.Description = view.Info.Description
		case types.FieldRelease:
			doc.Release = view.Info.Release
		case types.FieldCodename:
			doc.Codename = view.Info.Codename
		}
	}
	if len(view.Fields) == len(fieldLabels) {
		doc.Extra = view.Info.Extra
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode distribution info").
			WithCause(err)
	}
	return encoder.Close()
}

// fieldValue returns the display value of field and whether it was
// actually known.
func fieldValue(view types.DistroView, field types.DistroField) (string, bool) {
	var value string
	switch field {
	case types.FieldModules:
		value = strings.Join(view.Modules, moduleSeparator)
	case types.FieldID:
		value = view.Info.ID
	case types.FieldDescription:
		value = view.Info.Description
	case types.FieldRelease:
		value = view.Info.Release
	case types.FieldCodename:
		value = view.Info.Codename
	}
	if value == "" {
		return notAvailable, false
	}
	return value, true
}

var _ ports.DistroInfoWriterPort = DistroInfoWriterAdapter{}
