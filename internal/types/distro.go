package types

import "maps"

// Keys recognised in a distribution record and in the DISTRIB_* override file.
const (
	KeyID          = "ID"
	KeyOS          = "OS"
	KeyRelease     = "RELEASE"
	KeyCodename    = "CODENAME"
	KeyDescription = "DESCRIPTION"
)

// DistroInfo is the resolved identity of the running distribution.
//
// Empty fields mean the value could not be determined. Extra holds
// override keys that have no dedicated field.
type DistroInfo struct {
	ID          string
	OS          string
	Release     string
	Codename    string
	Description string
	Extra       map[string]string
}

// Get returns the value stored under a record key.
func (d DistroInfo) Get(key string) (string, bool) {
	var value string
	switch key {
	case KeyID:
		value = d.ID
	case KeyOS:
		value = d.OS
	case KeyRelease:
		value = d.Release
	case KeyCodename:
		value = d.Codename
	case KeyDescription:
		value = d.Description
	default:
		value = d.Extra[key]
	}
	return value, value != ""
}

// Set stores value under key, routing unknown keys to Extra.
func (d *DistroInfo) Set(key string, value string) {
	switch key {
	case KeyID:
		d.ID = value
	case KeyOS:
		d.OS = value
	case KeyRelease:
		d.Release = value
	case KeyCodename:
		d.Codename = value
	case KeyDescription:
		d.Description = value
	default:
		if d.Extra == nil {
			d.Extra = map[string]string{}
		}
		d.Extra[key] = value
	}
}

// Map flattens the record into key/value form, omitting empty values.
func (d DistroInfo) Map() map[string]string {
	out := map[string]string{}
	for _, key := range []string{KeyID, KeyOS, KeyRelease, KeyCodename, KeyDescription} {
		if value, ok := d.Get(key); ok {
			out[key] = value
		}
	}
	maps.Copy(out, d.Extra)
	return out
}
