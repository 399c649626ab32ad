package handle

import (
	"github.com/justyntemme/ofxgo/pkg/framework/suite"
	"github.com/justyntemme/ofxgo/pkg/ofx"
)

// HostMutex is a mutex owned by the host's multithread suite. It must be
// destroyed with Destroy.
type HostMutex struct {
	handle ofx.MutexHandle
	suite  ofx.MultiThreadSuiteV1
}

// NewHostMutex creates a host mutex already locked lockCount times.
func NewHostMutex(suites *suite.Table, lockCount int) (*HostMutex, error) {
	mt, err := suites.MultiThread()
	if err != nil {
		return nil, err
	}
	h, st := mt.MutexCreate(lockCount)
	if err := ofx.FromStatus(st, "mutexCreate"); err != nil {
		return nil, err
	}
	return &HostMutex{handle: h, suite: mt}, nil
}

func (m *HostMutex) check() error {
	if m.handle == nil {
		return ofx.NewError(ofx.KindInvalidHandle, "host mutex destroyed")
	}
	return nil
}

// Lock blocks until the mutex is held.
func (m *HostMutex) Lock() error {
	if err := m.check(); err != nil {
		return err
	}
	return ofx.FromStatus(m.suite.MutexLock(m.handle), "mutexLock")
}

// Unlock releases the mutex.
func (m *HostMutex) Unlock() error {
	if err := m.check(); err != nil {
		return err
	}
	return ofx.FromStatus(m.suite.MutexUnLock(m.handle), "mutexUnLock")
}

// TryLock takes the mutex if it is free and reports whether it did.
func (m *HostMutex) TryLock() (bool, error) {
	if err := m.check(); err != nil {
		return false, err
	}
	switch st := m.suite.MutexTryLock(m.handle); st {
	case ofx.StatOK:
		return true, nil
	case ofx.StatFailed:
		return false, nil
	default:
		return false, ofx.FromStatus(st, "mutexTryLock")
	}
}

// Destroy frees the mutex. Later calls do nothing.
func (m *HostMutex) Destroy() error {
	if m.handle == nil {
		return nil
	}
	h := m.handle
	m.handle = nil
	return ofx.FromStatus(m.suite.MutexDestroy(h), "mutexDestroy")
}
