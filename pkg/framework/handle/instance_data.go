package handle

import (
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/registry"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

type instanceEntry struct {
	value any
	id    ulid.ULID
}

// instances holds every attached payload. The effect's instance-data
// property stores only the registry id.
var instances = registry.New[instanceEntry]()

// LiveInstanceData returns how many payloads are attached across all effects.
func LiveInstanceData() int {
	return instances.Len()
}

// SetInstanceData attaches v to the effect instance. An instance holds at
// most one payload: attaching while one is live fails with AlreadyExists and
// leaves the existing payload in place.
func (e ImageEffect) SetInstanceData(v any) error {
	inst, err := e.Instance()
	if err != nil {
		return err
	}
	current, err := property.InstanceData.Get(inst)
	if err != nil {
		return err
	}
	if current != 0 {
		if existing, live := instances.Lookup(current); live {
			return ofx.NewError(ofx.KindAlreadyExists,
				"effect already has instance data %s (%T)", existing.id, existing.value)
		}
	}

	entry := instanceEntry{value: v, id: ulid.Make()}
	id := instances.Register(entry)
	if err := property.InstanceData.Set(inst, id); err != nil {
		instances.Take(id)
		return err
	}
	log := debug.Component("handle")
	log.Debug().
		Str("instance", entry.id.String()).
		Type("type", v).
		Msg("instance data attached")
	return nil
}

// InstanceData returns the payload attached to e as a T.
func InstanceData[T any](e ImageEffect) (T, error) {
	var zero T
	inst, err := e.Instance()
	if err != nil {
		return zero, err
	}
	id, err := property.InstanceData.Get(inst)
	if err != nil {
		return zero, err
	}
	entry, ok := instances.Lookup(id)
	if !ok {
		return zero, ofx.NewError(ofx.KindInvalidHandle, "effect has no instance data")
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, ofx.NewError(ofx.KindInvalidHandle,
			"instance data %s is %T, not %T", entry.id, entry.value, zero)
	}
	return v, nil
}

// DropInstanceData detaches and releases the payload, closing it if it is an
// io.Closer. It releases each payload exactly once; dropping an effect with
// nothing attached does nothing.
func (e ImageEffect) DropInstanceData() error {
	inst, err := e.Instance()
	if err != nil {
		return err
	}
	id, err := property.InstanceData.Get(inst)
	if err != nil {
		return err
	}
	if id == 0 {
		return nil
	}
	entry, ok := instances.Take(id)
	if !ok {
		return nil
	}

	log := debug.Component("handle")
	resetErr := property.InstanceData.Set(inst, 0)
	if resetErr != nil {
		log.Warn().Err(resetErr).Str("instance", entry.id.String()).Msg("could not clear instance data property")
	}
	if c, ok := entry.value.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return oops.In("handle").With("instance", entry.id.String()).Wrapf(err, "close instance data")
		}
	}
	log.Debug().Str("instance", entry.id.String()).Msg("instance data dropped")
	return resetErr
}
