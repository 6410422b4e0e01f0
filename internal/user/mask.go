package user

// FieldPath names an updatable field.
type FieldPath int

const (
	PathFirstName FieldPath = iota + 1
	PathLastName
	PathDisplayName
	PathPhone
)

var fieldPaths = map[string]FieldPath{
	"first_name":   PathFirstName,
	"last_name":    PathLastName,
	"display_name": PathDisplayName,
	"phone":        PathPhone,
}

func (p FieldPath) String() string {
	for name, fp := range fieldPaths {
		if fp == p {
			return name
		}
	}
	return "unknown"
}

// ParseFieldPath resolves a wire path. Unknown paths report false.
func ParseFieldPath(s string) (FieldPath, bool) {
	p, ok := fieldPaths[s]
	return p, ok
}

// Patch carries the replacement values of an update.
type Patch struct {
	FirstName   string
	LastName    string
	DisplayName string
	Phone       string
}

// Mask selects the fields an update touches.
type Mask struct {
	set   bool
	paths []FieldPath
}

// NewMask builds a mask from wire paths, dropping unknown ones.
// A mask built from no paths replaces every name field.
func NewMask(paths []string) Mask {
	m := Mask{set: len(paths) > 0}
	for _, raw := range paths {
		if p, ok := ParseFieldPath(raw); ok {
			m.paths = append(m.paths, p)
		}
	}
	return m
}

func (m Mask) Paths() []FieldPath {
	return m.paths
}

// Includes reports whether p would be written by the mask for patch.
func (m Mask) Includes(p FieldPath, patch Patch) bool {
	if !m.set {
		return p != PathPhone || patch.Phone != ""
	}

	for _, mp := range m.paths {
		if mp == p {
			return true
		}
	}
	return false
}

var setters = map[FieldPath]func(u *User, p Patch){
	PathFirstName:   func(u *User, p Patch) { u.FirstName = p.FirstName },
	PathLastName:    func(u *User, p Patch) { u.LastName = p.LastName },
	PathDisplayName: func(u *User, p Patch) { u.DisplayName = p.DisplayName },
	PathPhone:       func(u *User, p Patch) { u.Phone = p.Phone },
}

// Apply writes the masked fields of patch into u. Other fields are left untouched.
func (m Mask) Apply(u *User, patch Patch) {
	for _, p := range []FieldPath{PathFirstName, PathLastName, PathDisplayName, PathPhone} {
		if m.Includes(p, patch) {
			setters[p](u, patch)
		}
	}
}
