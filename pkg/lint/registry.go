package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/aliaslint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]ImportRule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]ImportRule // keyed by ID
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	RegisterRule(WrapRuleDef(rule))
}

// RegisterRule adds an ImportRule implementation to the global registry.
func RegisterRule(rule ImportRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// GetImportRules returns all registered rules sorted by ID.
func GetImportRules() []ImportRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]ImportRule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// GetRuleByID returns a rule by its ID.
func GetRuleByID(id string) (ImportRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetRulesByGroup returns all rules in a specific group.
func GetRulesByGroup(group string) []ImportRule {
	var rules []ImportRule
	for _, rule := range GetImportRules() {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllRules returns metadata for all registered rules.
func AllRules() []core.RuleInfo {
	rules := GetImportRules()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]ImportRule)
}
