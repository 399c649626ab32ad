// Package param provides fluent builders that define effect parameters while
// describing in a context.
//
//	err := param.Double("gain").
//		Label("Gain").
//		Range(0, 4).
//		Default(1).
//		Define(set)
//
// Setters only record properties. Define calls paramDefine for the builder's
// kind and then writes every recorded property in the order it was set,
// stopping at the first failure.
package param

import (
	"github.com/justyntemme/ofxgo/pkg/framework/handle"
	"github.com/justyntemme/ofxgo/pkg/framework/property"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// Definer is anything that can define itself in a parameter set.
type Definer interface {
	Name() string
	Define(set handle.ParamSet) error
	setParent(parent string)
}

type describer interface {
	property.ParamDescribing
	property.Labelled
}

// common holds the properties every parameter kind shares. B is the concrete
// builder so the shared setters keep the chain typed.
type common[B any] struct {
	self   B
	name   string
	writes []func(describer) error
}

func newCommon[B any](self B, name string) common[B] {
	return common[B]{self: self, name: name}
}

func (c *common[B]) record(w func(describer) error) B {
	c.writes = append(c.writes, w)
	return c.self
}

// Name returns the parameter name.
func (c *common[B]) Name() string { return c.name }

func (c *common[B]) setParent(parent string) {
	c.record(func(d describer) error { return property.Parent.Set(d, parent) })
}

// Label sets the user-visible label.
func (c *common[B]) Label(label string) B {
	return c.record(func(d describer) error { return property.Label.Set(d, label) })
}

// Hint sets the tooltip.
func (c *common[B]) Hint(hint string) B {
	return c.record(func(d describer) error { return property.Hint.Set(d, hint) })
}

// ScriptName sets the name scripts use for the parameter.
func (c *common[B]) ScriptName(name string) B {
	return c.record(func(d describer) error { return property.ScriptName.Set(d, name) })
}

// Parent places the parameter inside the named group.
func (c *common[B]) Parent(group string) B {
	return c.record(func(d describer) error { return property.Parent.Set(d, group) })
}

// Animates sets whether the parameter can be keyframed.
func (c *common[B]) Animates(v bool) B {
	return c.record(func(d describer) error { return property.Animates.Set(d, v) })
}

// Enabled sets whether the parameter starts enabled.
func (c *common[B]) Enabled(v bool) B {
	return c.record(func(d describer) error { return property.Enabled.Set(d, v) })
}

// Secret hides the parameter from the user.
func (c *common[B]) Secret(v bool) B {
	return c.record(func(d describer) error { return property.Secret.Set(d, v) })
}

// EvaluateOnChange sets whether changing the value triggers a render.
func (c *common[B]) EvaluateOnChange(v bool) B {
	return c.record(func(d describer) error { return property.EvaluateOnChange.Set(d, v) })
}

// CanUndo sets whether value changes go on the host's undo stack.
func (c *common[B]) CanUndo(v bool) B {
	return c.record(func(d describer) error { return property.CanUndo.Set(d, v) })
}

func define[B any, V describer](c *common[B], desc V, typed []func(V) error) error {
	for _, w := range c.writes {
		if err := w(desc); err != nil {
			return err
		}
	}
	for _, w := range typed {
		if err := w(desc); err != nil {
			return err
		}
	}
	return nil
}

// DoubleBuilder defines a double parameter.
type DoubleBuilder struct {
	common[*DoubleBuilder]
	typed []func(property.DoubleParamDescriptor) error
}

// Double starts a double parameter.
func Double(name string) *DoubleBuilder {
	b := &DoubleBuilder{}
	b.common = newCommon(b, name)
	return b
}

func (b *DoubleBuilder) set(w func(property.DoubleParamDescriptor) error) *DoubleBuilder {
	b.typed = append(b.typed, w)
	return b
}

// Default sets the default value.
func (b *DoubleBuilder) Default(v float64) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error { return property.DoubleDefault.Set(d, v) })
}

// Range sets the hard limits.
func (b *DoubleBuilder) Range(min, max float64) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error {
		if err := property.DoubleMin.Set(d, min); err != nil {
			return err
		}
		return property.DoubleMax.Set(d, max)
	})
}

// DisplayRange sets the slider limits.
func (b *DoubleBuilder) DisplayRange(min, max float64) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error {
		if err := property.DoubleDisplayMin.Set(d, min); err != nil {
			return err
		}
		return property.DoubleDisplayMax.Set(d, max)
	})
}

// Increment sets the slider step.
func (b *DoubleBuilder) Increment(v float64) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error { return property.Increment.Set(d, v) })
}

// Digits sets how many decimal places the host shows.
func (b *DoubleBuilder) Digits(n int) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error { return property.Digits.Set(d, n) })
}

// Type tells the host how to interpret the value.
func (b *DoubleBuilder) Type(t ofx.DoubleType) *DoubleBuilder {
	return b.set(func(d property.DoubleParamDescriptor) error { return property.DoubleType.Set(d, t) })
}

// Define implements Definer.
func (b *DoubleBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineDouble(b.name)
	if err != nil {
		return err
	}
	return define(&b.common, desc, b.typed)
}

// IntBuilder defines an integer parameter.
type IntBuilder struct {
	common[*IntBuilder]
	typed []func(property.IntParamDescriptor) error
}

// Int starts an integer parameter.
func Int(name string) *IntBuilder {
	b := &IntBuilder{}
	b.common = newCommon(b, name)
	return b
}

func (b *IntBuilder) set(w func(property.IntParamDescriptor) error) *IntBuilder {
	b.typed = append(b.typed, w)
	return b
}

// Default sets the default value.
func (b *IntBuilder) Default(v int) *IntBuilder {
	return b.set(func(d property.IntParamDescriptor) error { return property.IntDefault.Set(d, v) })
}

// Range sets the hard limits.
func (b *IntBuilder) Range(min, max int) *IntBuilder {
	return b.set(func(d property.IntParamDescriptor) error {
		if err := property.IntMin.Set(d, min); err != nil {
			return err
		}
		return property.IntMax.Set(d, max)
	})
}

// DisplayRange sets the slider limits.
func (b *IntBuilder) DisplayRange(min, max int) *IntBuilder {
	return b.set(func(d property.IntParamDescriptor) error {
		if err := property.IntDisplayMin.Set(d, min); err != nil {
			return err
		}
		return property.IntDisplayMax.Set(d, max)
	})
}

// Define implements Definer.
func (b *IntBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineInt(b.name)
	if err != nil {
		return err
	}
	return define(&b.common, desc, b.typed)
}

// BoolBuilder defines a boolean parameter.
type BoolBuilder struct {
	common[*BoolBuilder]
	typed []func(property.BoolParamDescriptor) error
}

// Bool starts a boolean parameter.
func Bool(name string) *BoolBuilder {
	b := &BoolBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Default sets the default value.
func (b *BoolBuilder) Default(v bool) *BoolBuilder {
	b.typed = append(b.typed, func(d property.BoolParamDescriptor) error { return property.BoolDefault.Set(d, v) })
	return b
}

// Define implements Definer.
func (b *BoolBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineBool(b.name)
	if err != nil {
		return err
	}
	return define(&b.common, desc, b.typed)
}

// StringBuilder defines a string parameter.
type StringBuilder struct {
	common[*StringBuilder]
	typed []func(property.StringParamDescriptor) error
}

// String starts a string parameter.
func String(name string) *StringBuilder {
	b := &StringBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Default sets the default value.
func (b *StringBuilder) Default(v string) *StringBuilder {
	b.typed = append(b.typed, func(d property.StringParamDescriptor) error { return property.StringDefault.Set(d, v) })
	return b
}

// Mode sets how the host edits the string.
func (b *StringBuilder) Mode(m ofx.StringMode) *StringBuilder {
	b.typed = append(b.typed, func(d property.StringParamDescriptor) error { return property.StringMode.Set(d, m) })
	return b
}

// Define implements Definer.
func (b *StringBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineString(b.name)
	if err != nil {
		return err
	}
	return define(&b.common, desc, b.typed)
}

// ChoiceBuilder defines a choice parameter. Its value is the index of the
// selected option.
type ChoiceBuilder struct {
	common[*ChoiceBuilder]
	options []string
	def     int
}

// Choice starts a choice parameter.
func Choice(name string) *ChoiceBuilder {
	b := &ChoiceBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Options sets the option labels in index order.
func (b *ChoiceBuilder) Options(options ...string) *ChoiceBuilder {
	b.options = append([]string(nil), options...)
	return b
}

// Default sets the index of the default option.
func (b *ChoiceBuilder) Default(index int) *ChoiceBuilder {
	b.def = index
	return b
}

// Define implements Definer. The default must index an option.
func (b *ChoiceBuilder) Define(set handle.ParamSet) error {
	if len(b.options) > 0 && (b.def < 0 || b.def >= len(b.options)) {
		return ofx.NewError(ofx.KindInvalidHandle, "choice %q: default %d outside %d options", b.name, b.def, len(b.options))
	}
	desc, err := set.DefineChoice(b.name)
	if err != nil {
		return err
	}
	var typed []func(property.ChoiceParamDescriptor) error
	if len(b.options) > 0 {
		typed = append(typed,
			func(d property.ChoiceParamDescriptor) error { return property.ChoiceOptions.Set(d, b.options) },
			func(d property.ChoiceParamDescriptor) error { return property.ChoiceDefault.Set(d, b.def) },
		)
	}
	return define(&b.common, desc, typed)
}

// GroupBuilder defines a group and, optionally, the parameters inside it.
type GroupBuilder struct {
	common[*GroupBuilder]
	typed    []func(property.GroupParamDescriptor) error
	children []Definer
}

// Group starts a group parameter.
func Group(name string) *GroupBuilder {
	b := &GroupBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Open sets whether the group starts expanded.
func (b *GroupBuilder) Open(v bool) *GroupBuilder {
	b.typed = append(b.typed, func(d property.GroupParamDescriptor) error { return property.GroupOpen.Set(d, v) })
	return b
}

// Children adds parameters that are defined right after the group with
// their parent set to it.
func (b *GroupBuilder) Children(children ...Definer) *GroupBuilder {
	b.children = append(b.children, children...)
	return b
}

// Define implements Definer.
func (b *GroupBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineGroup(b.name)
	if err != nil {
		return err
	}
	if err := define(&b.common, desc, b.typed); err != nil {
		return err
	}
	for _, child := range b.children {
		child.setParent(b.name)
		if err := child.Define(set); err != nil {
			return err
		}
	}
	return nil
}

// PageBuilder defines a page of controls.
type PageBuilder struct {
	common[*PageBuilder]
	children []string
}

// Page starts a page parameter.
func Page(name string) *PageBuilder {
	b := &PageBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Children lists the parameters shown on the page, in order.
func (b *PageBuilder) Children(names ...string) *PageBuilder {
	b.children = append(b.children, names...)
	return b
}

// Define implements Definer.
func (b *PageBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefinePage(b.name)
	if err != nil {
		return err
	}
	var typed []func(property.PageParamDescriptor) error
	if len(b.children) > 0 {
		typed = append(typed, func(d property.PageParamDescriptor) error { return property.PageChildren.Set(d, b.children) })
	}
	return define(&b.common, desc, typed)
}

// ButtonBuilder defines a push button.
type ButtonBuilder struct {
	common[*ButtonBuilder]
}

// Button starts a push button parameter.
func Button(name string) *ButtonBuilder {
	b := &ButtonBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Define implements Definer.
func (b *ButtonBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineButton(b.name)
	if err != nil {
		return err
	}
	return define[*ButtonBuilder, property.ParamDescriptor](&b.common, desc, nil)
}

// ParametricBuilder defines a parametric curve parameter.
type ParametricBuilder struct {
	common[*ParametricBuilder]
	typed []func(property.ParametricParamDescriptor) error
}

// Parametric starts a parametric parameter.
func Parametric(name string) *ParametricBuilder {
	b := &ParametricBuilder{}
	b.common = newCommon(b, name)
	return b
}

// Dimension sets the number of curves.
func (b *ParametricBuilder) Dimension(n int) *ParametricBuilder {
	b.typed = append(b.typed, func(d property.ParametricParamDescriptor) error { return property.ParametricDimension.Set(d, n) })
	return b
}

// Range sets the x range every curve is defined over.
func (b *ParametricBuilder) Range(min, max float64) *ParametricBuilder {
	r := ofx.RangeD{Min: min, Max: max}
	b.typed = append(b.typed, func(d property.ParametricParamDescriptor) error { return property.ParametricRange.Set(d, r) })
	return b
}

// Define implements Definer.
func (b *ParametricBuilder) Define(set handle.ParamSet) error {
	desc, err := set.DefineParametric(b.name)
	if err != nil {
		return err
	}
	return define(&b.common, desc, b.typed)
}
