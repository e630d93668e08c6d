package custom

import "sync"

type Tx struct{}

func (*Tx) Begin()  {}
func (*Tx) Commit() {}

var mu sync.Mutex

func short(tx *Tx) {
	mu.Lock()
	tx.Begin()
	tx.Commit()
	mu.Unlock()
}

func long(tx *Tx, ok bool) {
	tx.Begin() // want `SEM000: RegionFormed: group "tx" blocks=2 head=b0 members=\[b0 b1\]`
	if ok {
		tx.Commit()
	}
}
