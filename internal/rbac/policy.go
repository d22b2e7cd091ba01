package rbac

// Action is an operation performed on a protected subject.
type Action string

const (
	// ActionCreate allows creating a new resource.
	ActionCreate Action = "create"
	// ActionRead allows reading a resource.
	ActionRead Action = "read"
	// ActionUpdate allows modifying a resource.
	ActionUpdate Action = "update"
	// ActionDelete allows removing a resource.
	ActionDelete Action = "delete"
	// ActionManage is a super-action: granting it on a subject implies every
	// other action on that subject.
	ActionManage Action = "manage"
)

// Subject is the type of resource being protected.
type Subject string

const (
	// SubjectPost protects feed posts.
	SubjectPost Subject = "Post"
	// SubjectUser protects user accounts.
	SubjectUser Subject = "User"
	// SubjectAll is the wildcard subject used by blanket manage grants.
	SubjectAll Subject = "all"
)

// Ownable is a runtime resource carrying an owner identifier, consulted by
// dynamic rules. An empty owner identifier never matches.
type Ownable interface {
	OwnerID() string
}

// RuleKind discriminates the dynamic rule variants.
type RuleKind int

const (
	// RuleAlwaysDeny rejects regardless of user and resource. It is the zero
	// value, so an uninitialized rule fails closed.
	RuleAlwaysDeny RuleKind = iota
	// RuleAlwaysAllow grants regardless of the resource.
	RuleAlwaysAllow
	// RuleOwnerOnly grants only when the resource owner matches the user.
	RuleOwnerOnly
	// RuleCustom delegates to a caller-supplied predicate.
	RuleCustom
)

// RuleFunc is the predicate signature for custom dynamic rules.
type RuleFunc func(user *AuthUser, resource Ownable) bool

// Rule is a dynamic (resource-aware) permission entry. The built-in variants
// keep the policy table data-driven; RuleCustom exists for rules that cannot
// be expressed by the variants.
type Rule struct {
	Kind  RuleKind
	Check RuleFunc
}

// Allow returns a rule granting unconditionally.
func Allow() Rule {
	return Rule{Kind: RuleAlwaysAllow}
}

// Deny returns a rule rejecting unconditionally.
func Deny() Rule {
	return Rule{Kind: RuleAlwaysDeny}
}

// OwnerOnly returns a rule granting only to the resource owner.
func OwnerOnly() Rule {
	return Rule{Kind: RuleOwnerOnly}
}

// Custom returns a rule delegating to fn.
func Custom(fn RuleFunc) Rule {
	return Rule{Kind: RuleCustom, Check: fn}
}

// Allows evaluates the rule for the given user and resource.
func (r Rule) Allows(user *AuthUser, resource Ownable) bool {
	switch r.Kind {
	case RuleAlwaysAllow:
		return true
	case RuleOwnerOnly:
		return IsOwner(user, resource)
	case RuleCustom:
		if r.Check == nil {
			return false
		}

		return r.Check(user, resource)
	default:
		return false
	}
}

// IsOwner reports whether resource is owned by user. A nil user, nil
// resource or absent owner identifier denies; a missing owner is never
// treated as "no restriction".
func IsOwner(user *AuthUser, resource Ownable) bool {
	if user == nil || resource == nil {
		return false
	}

	ownerID := resource.OwnerID()
	if ownerID == "" {
		return false
	}

	return user.ID == ownerID
}

// Policy is the per-role permission record: unconditional static grants plus
// dynamic rules evaluated against a concrete resource.
type Policy struct {
	Static  map[Subject][]Action
	Dynamic map[Subject]map[Action]Rule
}

// grantsStatic reports whether the static set for subject contains action.
func (p Policy) grantsStatic(subject Subject, action Action) bool {
	for _, a := range p.Static[subject] {
		if a == action {
			return true
		}
	}

	return false
}

// dynamicRule returns the dynamic rule for (subject, action), if any.
func (p Policy) dynamicRule(subject Subject, action Action) (Rule, bool) {
	rules, ok := p.Dynamic[subject]
	if !ok {
		return Rule{}, false
	}

	rule, ok := rules[action]

	return rule, ok
}

// PolicyTable maps each role to its policy. A role absent from the table is
// treated as an empty policy: deny by default.
type PolicyTable map[Role]Policy

// DefaultPolicies is the policy of record for the platform.
//
// ADMIN can create, read and delete any post but update only posts it owns;
// SECRETARY and TEACHER create and read freely and update or delete only
// their own posts; STUDENT only reads. User management is governed by the
// separate axis in permissions.go, not by this table.
var DefaultPolicies = PolicyTable{
	RoleAdmin: {
		Static: map[Subject][]Action{
			SubjectPost: {ActionCreate, ActionRead, ActionDelete},
		},
		Dynamic: map[Subject]map[Action]Rule{
			SubjectPost: {ActionUpdate: OwnerOnly()},
		},
	},
	RoleSecretary: {
		Static: map[Subject][]Action{
			SubjectPost: {ActionCreate, ActionRead},
		},
		Dynamic: map[Subject]map[Action]Rule{
			SubjectPost: {
				ActionUpdate: OwnerOnly(),
				ActionDelete: OwnerOnly(),
			},
		},
	},
	RoleTeacher: {
		Static: map[Subject][]Action{
			SubjectPost: {ActionCreate, ActionRead},
		},
		Dynamic: map[Subject]map[Action]Rule{
			SubjectPost: {
				ActionUpdate: OwnerOnly(),
				ActionDelete: OwnerOnly(),
			},
		},
	},
	RoleStudent: {
		Static: map[Subject][]Action{
			SubjectPost: {ActionRead},
		},
	},
}
