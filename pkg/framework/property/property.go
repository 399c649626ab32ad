package property

// Property is a named property of value type V, readable and writable only
// through views implementing capability K.
type Property[K View, V any] struct {
	name  string
	codec codec[V]
}

func define[K View, V any](name string, c codec[V]) Property[K, V] {
	return Property[K, V]{name: name, codec: c}
}

// Name returns the protocol name of the property.
func (p Property[K, V]) Name() string { return p.name }

// Get reads the property from view.
func (p Property[K, V]) Get(view K) (V, error) {
	return p.codec.get(view.PropertySet(), p.name, 0)
}

// Set writes the property on view.
func (p Property[K, V]) Set(view K, v V) error {
	return p.codec.set(view.PropertySet(), p.name, 0, v)
}

// Reset restores the host default of the property.
func (p Property[K, V]) Reset(view K) error {
	return view.PropertySet().reset(p.name)
}

// Dimension returns how many slots the property currently holds.
func (p Property[K, V]) Dimension(view K) (int, error) {
	return view.PropertySet().dimension(p.name)
}

// Dynamic is a per-clip property whose name is a fixed prefix followed by the
// clip name, as used by the region-of-interest, frames-needed and
// clip-preference out arguments.
type Dynamic[K View, V any] struct {
	prefix string
	codec  codec[V]
}

func defineDynamic[K View, V any](prefix string, c codec[V]) Dynamic[K, V] {
	return Dynamic[K, V]{prefix: prefix, codec: c}
}

// Name returns the property name for clip.
func (d Dynamic[K, V]) Name(clip string) string { return d.prefix + clip }

// Get reads the property for clip.
func (d Dynamic[K, V]) Get(view K, clip string) (V, error) {
	if err := CheckString(clip); err != nil {
		var zero V
		return zero, err
	}
	return d.codec.get(view.PropertySet(), d.Name(clip), 0)
}

// Set writes the property for clip.
func (d Dynamic[K, V]) Set(view K, clip string, v V) error {
	if err := CheckString(clip); err != nil {
		return err
	}
	return d.codec.set(view.PropertySet(), d.Name(clip), 0, v)
}
