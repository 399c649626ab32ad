package plugin

import (
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/oops"

	"github.com/justyntemme/ofxgo/pkg/framework/action"
	"github.com/justyntemme/ofxgo/pkg/framework/debug"
	framework "github.com/justyntemme/ofxgo/pkg/framework/plugin"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// State is where a plugin is in the host's action sequence.
type State int

const (
	StateUnloaded State = iota
	StateLoaded
	StateDescribed
	StateInstances
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateDescribed:
		return "described"
	case StateInstances:
		return "instances"
	default:
		return "unknown"
	}
}

// unknownAction is the metrics label for every name outside the action
// table.
const unknownAction = "unknown"

// Descriptor is one plugin as the host sees it. It owns the suite table once
// Load succeeds and wraps every action in a before/after hook pair around
// the Effect.
type Descriptor struct {
	info   framework.Info
	effect Effect
	mapper *action.Mapper

	mu        sync.Mutex
	host      ofx.Host
	suites    *suite.Table
	handle    ofx.ImageEffectHandle // cached by Describe
	state     State
	contexts  map[ofx.Context]struct{}
	instances map[ofx.ImageEffectHandle]struct{}
}

func newDescriptor(info framework.Info, effect Effect) *Descriptor {
	return &Descriptor{
		info:      info,
		effect:    effect,
		mapper:    action.NewMapper(),
		contexts:  make(map[ofx.Context]struct{}),
		instances: make(map[ofx.ImageEffectHandle]struct{}),
	}
}

// Info returns the plugin identity.
func (d *Descriptor) Info() framework.Info { return d.info }

// State returns the current lifecycle state.
func (d *Descriptor) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Suites returns the loaded suite table, nil before Load and after Unload.
func (d *Descriptor) Suites() *suite.Table {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.suites
}

// Handle returns the effect handle cached by Describe.
func (d *Descriptor) Handle() ofx.ImageEffectHandle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle
}

// Contexts returns the contexts the host has described the plugin in.
func (d *Descriptor) Contexts() []ofx.Context {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]ofx.Context, 0, len(d.contexts))
	for c := range d.contexts {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Instances returns the number of live effect instances.
func (d *Descriptor) Instances() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.instances)
}

func (d *Descriptor) logger() zerolog.Logger {
	return debug.Component("dispatch").With().Str("effect", d.info.ID).Logger()
}

// SetHost records the host descriptor. No suite is fetched until Load.
func (d *Descriptor) SetHost(host ofx.Host) {
	configure()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.host = host
}

// MainEntry runs one action and returns the status for the host. Errors and
// panics never cross this boundary; they are logged and converted.
func (d *Descriptor) MainEntry(raw action.Raw) ofx.Status {
	label := unknownAction
	if _, ok := d.mapper.Lookup(raw.Name); ok {
		label = raw.Name
	}
	done := debug.DefaultMetrics.StartAction(d.info.ID, label)

	var err error
	panicErr := oops.In("plugin").
		With("plugin", d.info.ID, "action", raw.Name).
		Recoverf(func() { err = d.dispatch(raw) }, "action %s panicked", raw.Name)

	status := ofx.StatusOf(err)
	if panicErr != nil {
		err, status = panicErr, ofx.StatErrFatal
	}
	d.report(raw.Name, err, status)
	done(status.String())
	return status
}

func (d *Descriptor) report(name string, err error, status ofx.Status) {
	log := d.logger()
	switch {
	case err == nil:
		log.Trace().Str("action", name).Msg("action done")
		return
	case errors.Is(err, ofx.ReplyDefault):
		log.Trace().Str("action", name).Msg("action not trapped")
		return
	}

	var event *zerolog.Event
	if ofx.IsKind(err, ofx.KindInvalidAction) {
		event = log.Debug()
	} else {
		event = log.Error()
	}
	if oopsErr, ok := oops.AsOops(err); ok {
		event = event.Fields(oopsErr.Context())
	}
	event.Err(err).
		Str("action", name).
		Str("kind", string(ofx.KindOf(err))).
		Stringer("status", status).
		Msg("action failed")
}

func (d *Descriptor) dispatch(raw action.Raw) error {
	a, err := d.mapper.Map(d.Suites(), raw)
	if err != nil {
		return err
	}
	if err := d.before(a); err != nil {
		return err
	}

	d.mu.Lock()
	host, suites := d.host, d.suites
	d.mu.Unlock()
	if suites == nil {
		log := d.logger()
		log.Debug().Str("action", a.Name()).Msg("suites not loaded, skipping")
		return nil
	}

	ctx := &Context{
		host:   host,
		suites: suites,
		logger: d.logger().With().Str("action", a.Name()).Logger(),
		tiles:  renderTiles(),
	}
	status := execute(d.effect, ctx, a)
	if err := d.after(a, status); err != nil {
		return err
	}
	return status
}

// transition moves to next, logging transitions the protocol does not
// expect. Hosts are not held to the order.
func (d *Descriptor) transition(from []State, next State, name string) {
	if !slices.Contains(from, d.state) {
		log := d.logger()
		log.Warn().
			Str("action", name).
			Stringer("state", d.state).
			Msg("action out of order")
	}
	d.state = next
}

func (d *Descriptor) before(a action.Action) error {
	switch a := a.(type) {
	case action.Load:
		d.mu.Lock()
		defer d.mu.Unlock()
		suites, err := suite.Load(d.host)
		d.suites = suites
		if err != nil {
			return err
		}
		d.transition([]State{StateUnloaded}, StateLoaded, a.Name())

	case action.Unload:
		d.mu.Lock()
		defer d.mu.Unlock()
		d.suites = nil
		d.handle = nil
		clear(d.contexts)
		clear(d.instances)
		d.transition([]State{StateLoaded, StateDescribed}, StateUnloaded, a.Name())
		debug.DefaultMetrics.SetInstances(d.info.ID, 0)

	case action.Describe:
		d.mu.Lock()
		defer d.mu.Unlock()
		d.handle = a.Effect.Handle()
		d.transition([]State{StateLoaded, StateDescribed}, StateDescribed, a.Name())

	case action.DescribeInContext:
		c, err := property.Context.Get(a.In)
		if err != nil {
			log := d.logger()
			log.Warn().Err(err).Msg("describe in context without a context")
			return nil
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		d.contexts[c] = struct{}{}
	}
	return nil
}

// after runs whatever execute returned. Instance data is released after
// DestroyInstance even when the effect failed, so a host retry never frees
// it twice.
func (d *Descriptor) after(a action.Action, status error) error {
	switch a := a.(type) {
	case action.CreateInstance:
		if status != nil && !errors.Is(status, ofx.ReplyDefault) {
			if err := a.Effect.DropInstanceData(); err != nil {
				log := d.logger()
				log.Warn().Err(err).Msg("roll back instance data")
			}
			return nil
		}
		d.mu.Lock()
		d.instances[a.Effect.Handle()] = struct{}{}
		d.transition([]State{StateDescribed, StateInstances}, StateInstances, a.Name())
		n := len(d.instances)
		d.mu.Unlock()
		debug.DefaultMetrics.SetInstances(d.info.ID, n)

	case action.DestroyInstance:
		err := a.Effect.DropInstanceData()
		d.mu.Lock()
		delete(d.instances, a.Effect.Handle())
		n := len(d.instances)
		if n == 0 && d.state == StateInstances {
			d.state = StateDescribed
		}
		d.mu.Unlock()
		debug.DefaultMetrics.SetInstances(d.info.ID, n)
		return err
	}
	return nil
}
