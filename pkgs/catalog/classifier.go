package catalog

import "regexp"

// Shape is the whitespace-shape class a rule is statically partitioned
// into. At most one Shape applies per rule.
type Shape int

const (
	// ShapeNone marks a rule that carries no whitespace-indentation
	// constraint of its own (terminals, single-child wrapper rules, and
	// the gap-separated list-of-jogs container that a jogging shape
	// checker walks directly rather than delegating to ShapeSequence).
	ShapeNone Shape = iota
	ShapeBackdented
	ShapeCast
	ShapeLusLus
	ShapeSequence
	ShapeJog
	Shape0Jogging
	Shape1Jogging
	Shape2Jogging
	ShapePrefixJogging
)

func (s Shape) String() string {
	switch s {
	case ShapeBackdented:
		return "backdented"
	case ShapeCast:
		return "cast"
	case ShapeLusLus:
		return "lusLus"
	case ShapeSequence:
		return "sequence"
	case ShapeJog:
		return "jog"
	case Shape0Jogging:
		return "0-jogging"
	case Shape1Jogging:
		return "1-jogging"
	case Shape2Jogging:
		return "2-jogging"
	case ShapePrefixJogging:
		return "prefix-jogging"
	default:
		return "none"
	}
}

// tallRunePattern matches "tall<Rune6>" and "tall<Rune6>Mold" LHS names,
// where <Rune6> is the rune's six-letter spelled-out name (e.g. "Semsig",
// "Wutbar"): one uppercase letter followed by five lowercase letters.
var tallRunePattern = regexp.MustCompile(`^tall[A-Z][a-z]{5}(Mold)?$`)

// Classifier statically partitions rules into disjoint whitespace shape
// classes. It is built once from the grammar and is safe to share by
// reference; nothing in it mutates after construction.
type Classifier struct {
	rules    *RuleTable
	mortar   map[RuleID]bool
	note     map[RuleID]bool
	lusLus   map[RuleID]bool
	jog      map[RuleID]bool
	jog0     map[RuleID]bool
	jog1     map[RuleID]bool
	jog2     map[RuleID]bool
	jogPre   map[RuleID]bool
	seq      map[RuleID]bool
	jogList  map[RuleID]bool
	tallBody map[RuleID]bool
}

// ClassifierConfig lists the enumerated rule sets spec.md §4.2 describes.
// Every set is given in terms of RuleID, computed by the caller from the
// grammar's own rule table (e.g. by LHS name).
type ClassifierConfig struct {
	MortarLHS      []RuleID
	TallNote       []RuleID
	TallLusLus     []RuleID
	TallJog        []RuleID
	Tall0Jogging   []RuleID
	Tall1Jogging   []RuleID
	Tall2Jogging   []RuleID
	TallJogging1_  []RuleID
	Sequence       []RuleID
	JoggingList    []RuleID
	// TallBody lists the LHS (tallSemsig being the grammar's sole member)
	// whose own construct both checks as backdented *and* sets
	// body_indent for its descendants, per spec.md §4.6 step 1. It is a
	// subset of the rules the tallRune name pattern already matches, not
	// a separate Shape: checking stays the backdented algorithm, only the
	// context side-effect differs.
	TallBody []RuleID
}

func toSet(ids []RuleID) map[RuleID]bool {
	m := make(map[RuleID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// NewClassifier builds a Classifier from a rule table and the enumerated
// overrides in cfg.
func NewClassifier(rules *RuleTable, cfg ClassifierConfig) *Classifier {
	return &Classifier{
		rules:    rules,
		mortar:   toSet(cfg.MortarLHS),
		note:     toSet(cfg.TallNote),
		lusLus:   toSet(cfg.TallLusLus),
		jog:      toSet(cfg.TallJog),
		jog0:     toSet(cfg.Tall0Jogging),
		jog1:     toSet(cfg.Tall1Jogging),
		jog2:     toSet(cfg.Tall2Jogging),
		jogPre:   toSet(cfg.TallJogging1_),
		seq:      toSet(cfg.Sequence),
		jogList:  toSet(cfg.JoggingList),
		tallBody: toSet(cfg.TallBody),
	}
}

// IsMortar reports whether a rule's LHS is structural glue that should
// not be used as the diagnostic name of a construct.
func (c *Classifier) IsMortar(id RuleID) bool {
	return c.mortar[id]
}

// ShapeForRule classifies a rule by its static partition, in the
// priority order spec.md §4.2 implies: the enumerated jogging/jog/lusLus/
// sequence/jogging-list sets take priority over the name-pattern-based
// tallRune classification, which itself splits into tallNote (cast) vs
// tallBody (backdented); anything left over defaults to backdented if it
// has any gap-bearing children at all, and otherwise carries no shape.
func (c *Classifier) ShapeForRule(id RuleID) Shape {
	switch {
	case c.jogPre[id]:
		return ShapePrefixJogging
	case c.jog2[id]:
		return Shape2Jogging
	case c.jog1[id]:
		return Shape1Jogging
	case c.jog0[id]:
		return Shape0Jogging
	case c.jog[id]:
		return ShapeJog
	case c.lusLus[id]:
		return ShapeLusLus
	case c.seq[id]:
		return ShapeSequence
	case c.jogList[id]:
		return ShapeNone
	case c.note[id]:
		return ShapeCast
	}

	name := c.rules.LHSName(id)
	if tallRunePattern.MatchString(name) {
		return ShapeBackdented
	}

	r, ok := c.rules.ByID(id)
	if ok && r.Gapiness != 0 {
		return ShapeBackdented
	}
	return ShapeNone
}

// IsTallRune reports whether a rule's LHS matches the tall<Rune6> name
// pattern, per spec.md §4.6 step 2 ("if classified as tallRune, set
// tall_rune_indent"). This fires for every Backdented- or Cast-shaped
// rule the name pattern alone would classify, independent of whichever
// enumerated override actually won in ShapeForRule.
func (c *Classifier) IsTallRune(id RuleID) bool {
	return tallRunePattern.MatchString(c.rules.LHSName(id))
}

// IsTallBody reports whether a rule is the grammar's tallBody member
// (tallSemsig), whose construct additionally sets body_indent for its
// descendants alongside tall_rune_indent.
func (c *Classifier) IsTallBody(id RuleID) bool {
	return c.tallBody[id]
}

// IsJoggingShape reports whether a shape is one of the four
// jogging-bearing shapes that require a jogging census before checking.
func IsJoggingShape(s Shape) bool {
	switch s {
	case Shape0Jogging, Shape1Jogging, Shape2Jogging, ShapePrefixJogging:
		return true
	default:
		return false
	}
}
