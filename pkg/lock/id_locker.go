package lock

import (
	"sync"

	"github.com/apex/log"
)

// IDLocker hands out one mutex per integer id so read-modify-write cycles
// on a single record can be serialized without blocking unrelated records.
type IDLocker struct {
	mapMutex sync.Mutex
	idMap    map[int]*sync.Mutex
}

func NewIDLocker() *IDLocker {
	return &IDLocker{
		idMap: make(map[int]*sync.Mutex),
	}
}

func (l *IDLocker) Acquire(id int) {
	l.mapMutex.Lock()
	idMutex, ok := l.idMap[id]
	if !ok {
		idMutex = &sync.Mutex{}
		l.idMap[id] = idMutex
	}
	l.mapMutex.Unlock()
	idMutex.Lock()
}

func (l *IDLocker) Release(id int) {
	l.mapMutex.Lock()
	m, ok := l.idMap[id]
	l.mapMutex.Unlock()
	if !ok {
		log.Errorf("Release called on id (%d) with no mutex", id)

		return
	}

	m.Unlock()
}

// WithLock runs f while holding the mutex for id.
func (l *IDLocker) WithLock(id int, f func() error) error {
	l.Acquire(id)
	defer l.Release(id)
	return f()
}
