package verified

import "sync"

var mu sync.Mutex

func guarded(n int) int {
	mu.Lock() // want `SEM000: RegionFormed: group "lock" blocks=3 head=b0$`
	if n > 0 {
		n--
	}
	mu.Unlock()
	return n
}

func spin(n int) {
	for i := 0; i < n; i++ {
		mu.Lock() // want `SEM000: RegionFormed: group "lock" blocks=1 head=b\d+$`
		mu.Unlock()
	}
}
