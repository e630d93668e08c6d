package lock

import (
	"log"
	"os"
	"sync"
)

var mu sync.Mutex

func counter(n *int) {
	mu.Lock() // want `SEM000: RegionFormed: group "lock" blocks=1 head=b0 tails=\[b0\]`
	*n++
	mu.Unlock()
}

func branchy(rw *sync.RWMutex, ok bool) int {
	rw.RLock() // want `SEM000: RegionFormed: group "lock" blocks=3 head=b0`
	if ok {
		rw.RUnlock()
		return 1
	}
	rw.RUnlock()
	return 0
}

func locker(l sync.Locker) {
	l.Lock() // want `SEM000: RegionFormed: group "lock" blocks=1`
	l.Unlock()
}

func fatal(err error) {
	if err != nil {
		log.Fatal(err) // want `SEM000: RegionFormed: group "exit" blocks=1`
	}
}

func both(err error) { // want `SEM010: RegionsMerged: 2 groups of both blocks=3 head=b0`
	mu.Lock() // want `SEM000: RegionFormed: group "lock" blocks=3 head=b0`
	if err != nil {
		os.Exit(1) // want `SEM000: RegionFormed: group "exit" blocks=1`
	}
	mu.Unlock()
}

func spawned() {
	go mu.Unlock() // want `SEM000: RegionFormed: group "lock" blocks=1 head=b0 tails=\[b0\]`
}

func deferred(ok bool) {
	if ok {
		defer mu.Unlock() // want `SEM000: RegionFormed: group "lock" blocks=1 head=b1 tails=\[b1\]`
	}
}

func nothing(a, b int) int {
	if a > b {
		return a
	}
	return b
}
