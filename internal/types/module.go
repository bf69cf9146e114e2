package types

import "fmt"

// ModuleProvision is a single lsb-<module>-<arch> provision. An empty
// Version means the provision is unversioned and inherits the versions
// implied by the providing package.
type ModuleProvision struct {
	Module  string
	Arch    string
	Version string
}

// Identifier renders the module as <module>-<version>-<arch>.
func (p ModuleProvision) Identifier() string {
	return fmt.Sprintf("%s-%s-%s", p.Module, p.Version, p.Arch)
}
