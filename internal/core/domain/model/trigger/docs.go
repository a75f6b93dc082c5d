// Package trigger contains the AutomationTrigger aggregate: a rule that fires a
// configured action when a matching domain event occurs. Conditions are
// conjunctions of field/operator/value clauses evaluated against the event
// context.
package trigger
