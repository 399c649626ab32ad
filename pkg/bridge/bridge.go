// Package bridge is the C side of an ofxgo plugin module. It exports the two
// symbols a host looks up in a plugin binary, OfxGetNumberOfPlugins and
// OfxGetPlugin, and wraps the host's suite tables in the ofx suite
// interfaces.
//
// It should contain zero business logic, only C-to-Go mapping. Plugin main
// packages import it for its exports:
//
//	import _ "github.com/justyntemme/ofxgo/pkg/bridge"
package bridge

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "bridge.h"
import "C"

import (
	"sync"
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/framework/action"
	"github.com/justyntemme/ofxgo/pkg/ofx"
	"github.com/justyntemme/ofxgo/pkg/plugin"
)

const maxSlots = int(C.OFXGO_MAX_PLUGINS)

var (
	slotsMu sync.Mutex
	filled  [maxSlots]bool
	// Never freed: the host may read them until the module is unloaded.
	apiName = C.CString(ofx.ImageEffectPluginAPI)
)

// pluginSlot returns the C plugin struct for slot i with its identity
// filled in, or nil when no plugin is registered there.
func pluginSlot(i int) *C.OfxPlugin {
	d, ok := plugin.At(i)
	if !ok {
		return nil
	}
	p := C.ofxgo_plugin_slot(C.int(i))
	if p == nil {
		return nil
	}

	slotsMu.Lock()
	defer slotsMu.Unlock()
	if !filled[i] {
		info := d.Info()
		p.pluginApi = apiName
		p.apiVersion = C.int(info.APIVersion())
		p.pluginIdentifier = C.CString(info.ID)
		p.pluginVersionMajor = C.uint(info.VersionMajor)
		p.pluginVersionMinor = C.uint(info.VersionMinor)
		filled[i] = true
	}
	return p
}

//export OfxGetNumberOfPlugins
func OfxGetNumberOfPlugins() C.int {
	return C.int(min(plugin.Count(), maxSlots))
}

//export OfxGetPlugin
func OfxGetPlugin(nth C.int) *C.OfxPlugin {
	return pluginSlot(int(nth))
}

//export goSetHost
func goSetHost(slot C.int, h *C.OfxHost) {
	d, ok := plugin.At(int(slot))
	if !ok {
		return
	}
	d.SetHost(newHost(h))
}

//export goMainEntry
func goMainEntry(slot C.int, name *C.char, h unsafe.Pointer, in, out C.OfxPropertySetHandle) C.OfxStatus {
	d, ok := plugin.At(int(slot))
	if !ok {
		return C.OfxStatus(ofx.StatErrFatal)
	}
	status := d.MainEntry(action.Raw{
		Name:   C.GoString(name),
		Handle: ofx.ImageEffectHandle(h),
		In:     ofx.PropertySetHandle(unsafe.Pointer(in)),
		Out:    ofx.PropertySetHandle(unsafe.Pointer(out)),
	})
	return C.OfxStatus(status)
}

//export goThreadEntry
func goThreadEntry(index, count C.uint, arg C.uintptr_t) {
	plugin.RunThreadEntry(uintptr(arg), int(index), int(count))
}
