package transformations

// RuleSet is an ordered list of rules. Order is significant: every rule sees
// the output of the rules before it. The zero value is an empty set.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet returns a set applying rules in the given order.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the rules in application order.
func (s RuleSet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Len is the number of rules in the set.
func (s RuleSet) Len() int { return len(s.rules) }

// Concat returns a new set holding s followed by others.
func (s RuleSet) Concat(others ...RuleSet) RuleSet {
	n := len(s.rules)
	for _, o := range others {
		n += len(o.rules)
	}
	rules := make([]Rule, 0, n)
	rules = append(rules, s.rules...)
	for _, o := range others {
		rules = append(rules, o.rules...)
	}
	return RuleSet{rules: rules}
}

// Apply runs every rule over text in order.
func (s RuleSet) Apply(text string) string {
	if text == "" {
		return text
	}
	for _, r := range s.rules {
		text = r.Apply(text)
	}
	return text
}

// Apply runs rules over text. It is the package-level form of RuleSet.Apply.
func Apply(text string, rules RuleSet) string {
	return rules.Apply(text)
}
