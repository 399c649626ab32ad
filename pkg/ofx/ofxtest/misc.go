package ofxtest

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/justyntemme/ofxgo/pkg/ofx"
)

type memorySuite struct{ h *Host }

func (s *memorySuite) MemoryAlloc(_ ofx.ImageEffectHandle, size int) (uintptr, ofx.Status) {
	if st := s.h.begin("memoryAlloc"); st != ofx.StatOK {
		return 0, st
	}
	if size <= 0 {
		return 0, ofx.StatErrValue
	}
	block := make([]byte, size)
	ptr := uintptr(unsafe.Pointer(&block[0]))
	s.h.mu.Lock()
	s.h.memory[ptr] = block
	s.h.mu.Unlock()
	return ptr, ofx.StatOK
}

func (s *memorySuite) MemoryFree(ptr uintptr) ofx.Status {
	if st := s.h.begin("memoryFree"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	if _, ok := s.h.memory[ptr]; !ok {
		return ofx.StatErrBadHandle
	}
	delete(s.h.memory, ptr)
	return ofx.StatOK
}

// Mutex is a fake host mutex.
type Mutex struct {
	mu sync.Mutex
	// LockCount is the initial lock count passed to mutexCreate.
	LockCount int
}

type multiThreadSuite struct{ h *Host }

func (s *multiThreadSuite) MultiThread(threads int, arg uintptr) ofx.Status {
	if st := s.h.begin("multiThread"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	entry := s.h.ThreadEntry
	if threads <= 0 {
		threads = s.h.CPUs
	}
	s.h.mu.Unlock()
	if entry == nil {
		return ofx.StatFailed
	}

	var wg sync.WaitGroup
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			entry(arg, index, threads)
		}(i)
	}
	wg.Wait()
	return ofx.StatOK
}

func (s *multiThreadSuite) MultiThreadNumCPUs() (int, ofx.Status) {
	if st := s.h.begin("multiThreadNumCPUs"); st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.h.CPUs, ofx.StatOK
}

func (s *multiThreadSuite) MultiThreadIndex() (int, ofx.Status) {
	return 0, s.h.begin("multiThreadIndex")
}

func (s *multiThreadSuite) MultiThreadIsSpawnedThread() bool {
	s.h.count("multiThreadIsSpawnedThread")
	return false
}

func (s *multiThreadSuite) mutex(m ofx.MutexHandle) *Mutex {
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.h.mutexes[unsafe.Pointer(m)]
}

func (s *multiThreadSuite) MutexCreate(lockCount int) (ofx.MutexHandle, ofx.Status) {
	if st := s.h.begin("mutexCreate"); st != ofx.StatOK {
		return nil, st
	}
	m := &Mutex{LockCount: lockCount}
	for i := 0; i < lockCount; i++ {
		m.mu.Lock()
	}
	s.h.mu.Lock()
	s.h.mutexes[unsafe.Pointer(m)] = m
	s.h.mu.Unlock()
	return ofx.MutexHandle(unsafe.Pointer(m)), ofx.StatOK
}

func (s *multiThreadSuite) MutexDestroy(handle ofx.MutexHandle) ofx.Status {
	if st := s.h.begin("mutexDestroy"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	if _, ok := s.h.mutexes[unsafe.Pointer(handle)]; !ok {
		return ofx.StatErrBadHandle
	}
	delete(s.h.mutexes, unsafe.Pointer(handle))
	return ofx.StatOK
}

func (s *multiThreadSuite) MutexLock(handle ofx.MutexHandle) ofx.Status {
	if st := s.h.begin("mutexLock"); st != ofx.StatOK {
		return st
	}
	m := s.mutex(handle)
	if m == nil {
		return ofx.StatErrBadHandle
	}
	m.mu.Lock()
	return ofx.StatOK
}

func (s *multiThreadSuite) MutexUnLock(handle ofx.MutexHandle) ofx.Status {
	if st := s.h.begin("mutexUnLock"); st != ofx.StatOK {
		return st
	}
	m := s.mutex(handle)
	if m == nil {
		return ofx.StatErrBadHandle
	}
	m.mu.Unlock()
	return ofx.StatOK
}

func (s *multiThreadSuite) MutexTryLock(handle ofx.MutexHandle) ofx.Status {
	if st := s.h.begin("mutexTryLock"); st != ofx.StatOK {
		return st
	}
	m := s.mutex(handle)
	if m == nil {
		return ofx.StatErrBadHandle
	}
	if !m.mu.TryLock() {
		return ofx.StatFailed
	}
	return ofx.StatOK
}

type messageSuite struct{ h *Host }

func (s *messageSuite) Message(_ ofx.ImageEffectHandle, kind ofx.MessageType, id, text string) ofx.Status {
	if st := s.h.begin("message"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	s.h.Messages = append(s.h.Messages, Message{Kind: kind, ID: id, Text: text})
	s.h.mu.Unlock()
	if kind == ofx.MessageQuestion {
		return ofx.StatReplyYes
	}
	return ofx.StatOK
}

func (s *messageSuite) SetPersistentMessage(effect ofx.ImageEffectHandle, kind ofx.MessageType, id, text string) ofx.Status {
	if st := s.h.begin("setPersistentMessage"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	s.h.Persistent[effect] = Message{Kind: kind, ID: id, Text: text}
	s.h.mu.Unlock()
	return ofx.StatOK
}

func (s *messageSuite) ClearPersistentMessage(effect ofx.ImageEffectHandle) ofx.Status {
	if st := s.h.begin("clearPersistentMessage"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	delete(s.h.Persistent, effect)
	s.h.mu.Unlock()
	return ofx.StatOK
}

type progressSuite struct{ h *Host }

func (s *progressSuite) record(event string) {
	s.h.mu.Lock()
	s.h.Progress = append(s.h.Progress, event)
	s.h.mu.Unlock()
}

func (s *progressSuite) ProgressStart(_ ofx.ImageEffectHandle, label string) ofx.Status {
	if st := s.h.begin("progressStart"); st != ofx.StatOK {
		return st
	}
	s.record("start:" + label)
	return ofx.StatOK
}

func (s *progressSuite) ProgressStartWithID(_ ofx.ImageEffectHandle, label, messageID string) ofx.Status {
	if st := s.h.begin("progressStartV2"); st != ofx.StatOK {
		return st
	}
	s.record("start:" + label + "#" + messageID)
	return ofx.StatOK
}

func (s *progressSuite) ProgressUpdate(_ ofx.ImageEffectHandle, progress float64) ofx.Status {
	if st := s.h.begin("progressUpdate"); st != ofx.StatOK {
		return st
	}
	s.record(fmt.Sprintf("update:%g", progress))
	return ofx.StatOK
}

func (s *progressSuite) ProgressEnd(_ ofx.ImageEffectHandle) ofx.Status {
	if st := s.h.begin("progressEnd"); st != ofx.StatOK {
		return st
	}
	s.record("end")
	return ofx.StatOK
}

type timeLineSuite struct{ h *Host }

func (s *timeLineSuite) GetTime(_ ofx.ImageEffectHandle) (ofx.Time, ofx.Status) {
	if st := s.h.begin("getTime"); st != ofx.StatOK {
		return 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.h.Time, ofx.StatOK
}

func (s *timeLineSuite) GotoTime(_ ofx.ImageEffectHandle, t ofx.Time) ofx.Status {
	if st := s.h.begin("gotoTime"); st != ofx.StatOK {
		return st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	s.h.Time = t
	return ofx.StatOK
}

func (s *timeLineSuite) GetTimeBounds(_ ofx.ImageEffectHandle) (ofx.Time, ofx.Time, ofx.Status) {
	if st := s.h.begin("getTimeBounds"); st != ofx.StatOK {
		return 0, 0, st
	}
	s.h.mu.Lock()
	defer s.h.mu.Unlock()
	return s.h.TimeBounds[0], s.h.TimeBounds[1], ofx.StatOK
}
