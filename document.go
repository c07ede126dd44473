// FILE: lixenwraith/ini/document.go
package ini

// Section is a named mapping of keys to string values. Keys keep the order in
// which they were first declared.
type Section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *Section {
	return &Section{
		name:   name,
		values: make(map[string]string),
	}
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, overwriting any previous value.
func (s *Section) Set(key, value string) {
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Delete removes key and reports whether it existed.
func (s *Section) Delete(key string) bool {
	if _, exists := s.values[key]; !exists {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in declaration order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of keys.
func (s *Section) Len() int { return len(s.keys) }

// Map returns a copy of the key/value mapping.
func (s *Section) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Document is the parsed, in-memory form of an INI source. Sections keep the
// order of their first header.
type Document struct {
	order    []string
	sections map[string]*Section
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{
		sections: make(map[string]*Section),
	}
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]
	return s, ok
}

// Ensure returns the named section, creating it when absent.
// A re-declared section keeps its original position and keys.
func (d *Document) Ensure(name string) *Section {
	if s, ok := d.sections[name]; ok {
		return s
	}
	s := newSection(name)
	d.sections[name] = s
	d.order = append(d.order, name)
	return s
}

// DeleteSection removes the named section and reports whether it existed.
func (d *Document) DeleteSection(name string) bool {
	if _, ok := d.sections[name]; !ok {
		return false
	}
	delete(d.sections, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the value at section/key.
func (d *Document) Get(section, key string) (string, bool) {
	s, ok := d.sections[section]
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// Set stores a value, creating the section when absent.
func (d *Document) Set(section, key, value string) {
	d.Ensure(section).Set(key, value)
}

// SectionNames returns section names in declaration order.
func (d *Document) SectionNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of sections.
func (d *Document) Len() int { return len(d.order) }

// Map returns a deep copy of the document as nested maps.
func (d *Document) Map() map[string]map[string]string {
	out := make(map[string]map[string]string, len(d.sections))
	for name, s := range d.sections {
		out[name] = s.Map()
	}
	return out
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := NewDocument()
	for _, name := range d.order {
		src := d.sections[name]
		dst := clone.Ensure(name)
		for _, k := range src.keys {
			dst.Set(k, src.values[k])
		}
	}
	return clone
}
