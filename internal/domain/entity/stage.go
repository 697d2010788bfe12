package entity

// Stage bundles one level's tilemap and its placed objects. The simulation
// reads tiles and queries objects for collision; it never mutates tiles.
type Stage struct {
	Name    string
	Tilemap *Tilemap

	Platforms     []*Platform
	AbilityBlocks []*AbilityBlock
	Keys          []*Key
	Doors         []*Door

	Spawn Vec2

	totalKeys map[int]int
}

// NewStage creates a stage around a tilemap. The spawn point defaults to the
// tilemap's spawn tile when present.
func NewStage(name string, tilemap *Tilemap) *Stage {
	s := &Stage{
		Name:      name,
		Tilemap:   tilemap,
		totalKeys: make(map[int]int),
	}
	if spawn, ok := tilemap.SpawnPoint(); ok {
		s.Spawn = spawn
	}
	return s
}

// AddKey registers a key and its group count
func (s *Stage) AddKey(k *Key) {
	s.Keys = append(s.Keys, k)
	s.totalKeys[k.Group]++
}

// TickObjects advances every object by one tick
func (s *Stage) TickObjects() {
	for _, pl := range s.Platforms {
		pl.Tick()
	}
	for _, d := range s.Doors {
		if !d.Open && s.AllKeysCollected(d.Group) {
			d.Open = true
		}
	}
}

// CheckObjectCollision returns the strongest blocking classification of any
// object overlapping b in the given world
func (s *Stage) CheckObjectCollision(b Bounds, world WorldType) CollisionType {
	result := CollisionNone
	for _, pl := range s.Platforms {
		if c := pl.CollidesWith(b, world); c > result {
			result = c
		}
	}
	for _, ab := range s.AbilityBlocks {
		if c := ab.CollidesWith(b, world); c > result {
			result = c
		}
	}
	for _, d := range s.Doors {
		if c := d.CollidesWith(b, world); c > result {
			result = c
		}
	}
	return result
}

// HandleObjectDirectionalCollision runs object side effects for a directional
// probe and returns the strongest classification hit
func (s *Stage) HandleObjectDirectionalCollision(b Bounds, p *Player, world WorldType, dir Direction) CollisionType {
	result := CollisionNone
	for _, pl := range s.Platforms {
		if c := pl.CollidesWith(b, world); c != CollisionNone {
			pl.OnDirectionalCollision(p, dir)
			if c > result {
				result = c
			}
		}
	}
	for _, ab := range s.AbilityBlocks {
		if c := ab.CollidesWith(b, world); c != CollisionNone {
			ab.OnDirectionalCollision(p, dir)
			if c > result {
				result = c
			}
		}
	}
	for _, d := range s.Doors {
		if c := d.CollidesWith(b, world); c > result {
			result = c
		}
	}
	return result
}

// CollectKeys picks up any uncollected key overlapping b
func (s *Stage) CollectKeys(b Bounds, world WorldType) {
	for _, k := range s.Keys {
		if k.CollidesWith(b, world) == CollisionNonSolid {
			k.Collected = true
		}
	}
}

// CollectedKeys counts the collected keys in a group
func (s *Stage) CollectedKeys(group int) int {
	n := 0
	for _, k := range s.Keys {
		if k.Group == group && k.Collected {
			n++
		}
	}
	return n
}

// AllKeysCollected reports whether every key of a group has been collected.
// Groups without keys count as complete.
func (s *Stage) AllKeysCollected(group int) bool {
	return s.CollectedKeys(group) >= s.totalKeys[group]
}
