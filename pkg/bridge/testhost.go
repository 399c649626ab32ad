package bridge

/*
#include <stdarg.h>
#include <string.h>

#include "bridge.h"

// A minimal in-process host. Property values live in one shared slot
// regardless of the handle and name. The required suites it does not
// implement are present with every function NULL; optional suites and
// anything above version 1 are missing.

static struct {
    int i;
    void *p;
    char s[64];
} testhost_store;

static char testhost_handle;

static OfxStatus testhost_set_pointer(OfxPropertySetHandle h, const char *name, int index, void *v) {
    testhost_store.p = v;
    return 0;
}

static OfxStatus testhost_set_string(OfxPropertySetHandle h, const char *name, int index, const char *v) {
    strncpy(testhost_store.s, v, sizeof testhost_store.s - 1);
    return 0;
}

static OfxStatus testhost_set_int(OfxPropertySetHandle h, const char *name, int index, int v) {
    testhost_store.i = v;
    return 0;
}

static OfxStatus testhost_get_pointer(OfxPropertySetHandle h, const char *name, int index, void **v) {
    *v = testhost_store.p;
    return 0;
}

static OfxStatus testhost_get_string(OfxPropertySetHandle h, const char *name, int index, char **v) {
    *v = testhost_store.s;
    return 0;
}

static OfxStatus testhost_get_int(OfxPropertySetHandle h, const char *name, int index, int *v) {
    *v = testhost_store.i;
    return 0;
}

static OfxStatus testhost_get_dimension(OfxPropertySetHandle h, const char *name, int *count) {
    *count = 1;
    return 0;
}

// String parameters: the current value is NULL, the keyed value is "keyed".
static OfxStatus testhost_param_get_value(OfxParamHandle p, ...) {
    va_list ap;
    va_start(ap, p);
    char **v = va_arg(ap, char **);
    *v = NULL;
    va_end(ap);
    return 0;
}

static OfxStatus testhost_param_get_value_at_time(OfxParamHandle p, OfxTime t, ...) {
    va_list ap;
    va_start(ap, t);
    char **v = va_arg(ap, char **);
    *v = (char *)"keyed";
    va_end(ap);
    return 0;
}

// Threads run one after another on the calling thread.
static OfxStatus testhost_multi_thread(OfxThreadFunctionV1 func, unsigned int n, void *arg) {
    for (unsigned int i = 0; i < n; i++) {
        func(i, n, arg);
    }
    return 0;
}

static OfxStatus testhost_num_cpus(unsigned int *n) {
    *n = 4;
    return 0;
}

static OfxPropertySuiteV1 testhost_props = {
    .propSetPointer = testhost_set_pointer,
    .propSetString = testhost_set_string,
    .propSetInt = testhost_set_int,
    .propGetPointer = testhost_get_pointer,
    .propGetString = testhost_get_string,
    .propGetInt = testhost_get_int,
    .propGetDimension = testhost_get_dimension,
};

static OfxParameterSuiteV1 testhost_params = {
    .paramGetValue = testhost_param_get_value,
    .paramGetValueAtTime = testhost_param_get_value_at_time,
};

static OfxMultiThreadSuiteV1 testhost_threads = {
    .multiThread = testhost_multi_thread,
    .multiThreadNumCPUs = testhost_num_cpus,
};

static OfxImageEffectSuiteV1 testhost_effects;
static OfxMemorySuiteV1 testhost_memory;
static OfxMessageSuiteV1 testhost_message;
static OfxProgressSuiteV1 testhost_progress;
static OfxTimeLineSuiteV1 testhost_timeline;

static const void *testhost_fetch(OfxPropertySetHandle host, const char *name, int version) {
    if (version != 1) {
        return NULL;
    }
    if (strcmp(name, "OfxPropertySuite") == 0) {
        return &testhost_props;
    }
    if (strcmp(name, "OfxParameterSuite") == 0) {
        return &testhost_params;
    }
    if (strcmp(name, "OfxMultiThreadSuite") == 0) {
        return &testhost_threads;
    }
    if (strcmp(name, "OfxImageEffectSuite") == 0) {
        return &testhost_effects;
    }
    if (strcmp(name, "OfxMemorySuite") == 0) {
        return &testhost_memory;
    }
    if (strcmp(name, "OfxMessageSuite") == 0) {
        return &testhost_message;
    }
    if (strcmp(name, "OfxProgressSuite") == 0) {
        return &testhost_progress;
    }
    if (strcmp(name, "OfxTimeLineSuite") == 0) {
        return &testhost_timeline;
    }
    return NULL;
}

static OfxHost testhost = {(OfxPropertySetHandle)&testhost_handle, testhost_fetch};
static OfxHost testhost_without_fetch = {(OfxPropertySetHandle)&testhost_handle, NULL};

static OfxHost *ofxgo_testhost(void) { return &testhost; }
static OfxHost *ofxgo_testhost_without_fetch(void) { return &testhost_without_fetch; }
static void *ofxgo_testhost_handle(void) { return &testhost_handle; }
static OfxPropertySuiteV1 *ofxgo_testhost_empty_props(void) {
    static OfxPropertySuiteV1 empty;
    return &empty;
}
*/
import "C"

import (
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// testHost returns the in-process host above. Its property, parameter and
// multithread suites work; the other required suites have no functions.
func testHost() ofx.Host {
	return newHost(C.ofxgo_testhost())
}

// testHostWithoutFetch returns a host whose fetchSuite is NULL.
func testHostWithoutFetch() ofx.Host {
	return newHost(C.ofxgo_testhost_without_fetch())
}

// testHostHandle is a non-nil C address usable as any handle.
func testHostHandle() unsafe.Pointer {
	return C.ofxgo_testhost_handle()
}

// emptyPropertySuite wraps a property suite with every function NULL.
func emptyPropertySuite() ofx.PropertySuiteV1 {
	return &propertySuite{s: C.ofxgo_testhost_empty_props()}
}

// attachTestHost hands the test host to the plugin in slot, as setHost does.
func attachTestHost(slot int) {
	goSetHost(C.int(slot), C.ofxgo_testhost())
}

// callMainEntry runs one action through the C-facing entry of slot.
func callMainEntry(slot int, name string, h unsafe.Pointer) ofx.Status {
	cname, free := cString(name)
	defer free()
	return ofx.Status(goMainEntry(C.int(slot), cname, h, nil, nil))
}
