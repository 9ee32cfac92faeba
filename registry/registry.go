package registry

import (
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/winguid"
)

// tableFile is the on-disk shape of a type table.
type tableFile struct {
	Types []typeEntry `yaml:"types"`
}

// typeEntry is one declared type. Which keys apply depends on kind.
type typeEntry struct {
	Name             string   `yaml:"name"`
	Kind             string   `yaml:"kind"`
	GUID             string   `yaml:"guid,omitempty"`
	IID              string   `yaml:"iid,omitempty"`
	Flags            bool     `yaml:"flags,omitempty"`
	Fields           []string `yaml:"fields,omitempty"`
	Of               string   `yaml:"of,omitempty"`
	Args             []string `yaml:"args,omitempty"`
	DefaultInterface string   `yaml:"default_interface,omitempty"`
	AuthoredAs       string   `yaml:"authored_as,omitempty"`
	Signature        string   `yaml:"signature,omitempty"`
}

// Registry is a name-indexed set of resolved type descriptors.
type Registry struct {
	types map[string]*descriptor.Type
	names []string
}

// Load reads a type table from r and resolves every entry.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("reading type table: %v", err)}
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("parsing type table: %v", err)}
	}

	res := &resolver{
		entries:  make(map[string]typeEntry, len(file.Types)),
		resolved: make(map[string]*descriptor.Type, len(file.Types)),
		visiting: make(map[string]bool),
	}
	for _, e := range file.Types {
		if e.Name == "" {
			return nil, &LoadError{Code: ErrCodeMissingName, Message: "type entry has no name"}
		}
		if !norm.NFC.IsNormalString(e.Name) {
			return nil, &LoadError{Code: ErrCodeNameNorm, Name: e.Name, Message: "type name is not NFC-normalized"}
		}
		if _, ok := builtins[e.Name]; ok {
			return nil, &LoadError{Code: ErrCodeShadowsBuiltin, Name: e.Name, Message: "type name shadows a builtin"}
		}
		if _, ok := res.entries[e.Name]; ok {
			return nil, &LoadError{Code: ErrCodeDuplicate, Name: e.Name, Message: "type declared more than once"}
		}
		res.entries[e.Name] = e
	}

	reg := &Registry{types: make(map[string]*descriptor.Type, len(file.Types))}
	for _, e := range file.Types {
		t, err := res.resolve(e.Name)
		if err != nil {
			return nil, err
		}
		reg.types[e.Name] = t
		reg.names = append(reg.names, e.Name)
	}
	slices.Sort(reg.names)
	return reg, nil
}

// LoadFile reads and resolves the type table at path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("opening type table: %v", err)}
	}
	defer f.Close()
	return Load(f)
}

// Lookup returns the descriptor for name. Declared types win over
// builtins; builtin names (int32, string, ...) resolve as well.
func (r *Registry) Lookup(name string) (*descriptor.Type, bool) {
	if t, ok := r.types[name]; ok {
		return t, true
	}
	if t, ok := builtins[name]; ok {
		return t, true
	}
	return nil, false
}

// Names returns the declared type names in sorted order. Builtins are not
// listed.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of declared types.
func (r *Registry) Len() int {
	return len(r.types)
}

// resolver turns entries into descriptor trees, memoizing by name. The
// visiting set rejects reference cycles, so the trees handed to the
// signature builder are guaranteed acyclic.
type resolver struct {
	entries  map[string]typeEntry
	resolved map[string]*descriptor.Type
	visiting map[string]bool
}

func (r *resolver) resolve(name string) (*descriptor.Type, error) {
	if t, ok := r.resolved[name]; ok {
		return t, nil
	}
	if t, ok := builtins[name]; ok {
		return t, nil
	}
	e, ok := r.entries[name]
	if !ok {
		return nil, &LoadError{Code: ErrCodeUnknownRef, Name: name, Message: "type is not declared and is not a builtin"}
	}
	if r.visiting[name] {
		return nil, &LoadError{Code: ErrCodeCycle, Name: name, Message: "cyclic type reference"}
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	t, err := r.build(e)
	if err != nil {
		return nil, err
	}
	r.resolved[name] = t
	return t, nil
}

func (r *resolver) build(e typeEntry) (*descriptor.Type, error) {
	t := &descriptor.Type{
		FullName:          e.Name,
		IsFlags:           e.Flags,
		SignatureOverride: e.Signature,
	}

	if e.GUID != "" {
		g, err := winguid.Parse(e.GUID)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadGUID, Name: e.Name, Message: err.Error()}
		}
		t.DeclaredID = &g
	}
	if e.IID != "" {
		g, err := winguid.Parse(e.IID)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadGUID, Name: e.Name, Message: err.Error()}
		}
		t.InstanceID = &g
	}

	switch e.Kind {
	case "enum":
		t.Kind = descriptor.KindEnum

	case "struct":
		t.Kind = descriptor.KindStruct
		for _, ref := range e.Fields {
			field, err := r.resolve(ref)
			if err != nil {
				return nil, err
			}
			t.Fields = append(t.Fields, field)
		}

	case "interface":
		t.Kind = descriptor.KindInterface
		if e.AuthoredAs != "" {
			alias, err := r.resolve(e.AuthoredAs)
			if err != nil {
				return nil, err
			}
			t.AuthoredAs = alias
		}

	case "pinterface":
		t.Kind = descriptor.KindPInterface
		if e.Of == "" {
			return nil, &LoadError{Code: ErrCodeBadEntry, Name: e.Name, Message: "pinterface requires of: naming the generic definition"}
		}
		def, err := r.resolve(e.Of)
		if err != nil {
			return nil, err
		}
		// The signature embeds the declared identifier of the open
		// definition, never a derived one.
		t.DeclaredID = def.DeclaredID
		if len(e.Args) == 0 {
			return nil, &LoadError{Code: ErrCodeBadEntry, Name: e.Name, Message: "pinterface requires at least one args: entry"}
		}
		for _, ref := range e.Args {
			arg, err := r.resolve(ref)
			if err != nil {
				return nil, err
			}
			t.GenericArgs = append(t.GenericArgs, arg)
		}

	case "class":
		t.Kind = descriptor.KindClass
		if e.DefaultInterface == "" {
			return nil, &LoadError{Code: ErrCodeBadEntry, Name: e.Name, Message: "class requires default_interface:"}
		}
		def, err := r.resolve(e.DefaultInterface)
		if err != nil {
			return nil, err
		}
		t.DefaultInterface = def

	case "delegate":
		t.Kind = descriptor.KindDelegate

	default:
		return nil, &LoadError{Code: ErrCodeUnknownKind, Name: e.Name, Message: fmt.Sprintf("unknown kind %q", e.Kind)}
	}

	return t, nil
}
