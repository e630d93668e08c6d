package directive

func step() {}

func hot(n int) {
	//seme:anchor hot
	step() // want `SEM000: RegionFormed: group "hot" blocks=1 head=b0`
	for i := 0; i < n; i++ {
		step()
	}
}

func loop(n int) {
	//seme:anchor body
	for i := 0; i < n; i++ { // want `SEM000: RegionFormed: group "body" blocks=2`
		step()
	}
	step()
}

func trailing(ok bool) {
	if ok {
		step() /* want `SEM000: RegionFormed: group "branch" blocks=1` */ //seme:anchor branch
	}
}

func malformed() {
	/* want `SEM040: DirectiveMalformed` */ //seme:anchor
	step()
}

func dangling() {
	step()
	/* want `SEM030: DirectiveUnattached: no statement for group "late"` */ //seme:anchor late
}

func idle() {
	/* want `SEM030: DirectiveUnattached: statement marked for group "idle" has no instructions` */ //seme:anchor idle
	{
	}
}
