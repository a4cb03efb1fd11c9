package ginkgo

import (
	"fmt"

	"github.com/onsi/ginkgo"
)

// ConditionallyIt registers a spec that fails up front unless condition
// holds when the spec runs.
//
// Ginkgo evaluates container bodies while building the spec tree and only
// runs It bodies afterwards, so ordered specs that depend on an earlier one
// cannot guard themselves with a plain if:
//
//	created := false
//	It("should create the namespace", func() {
//		namespace.Create(client, tenant, name)
//		created = true
//	})
//
//	ConditionallyIt(
//		"should list the namespace",
//		If("the namespace was created", func() bool { return created }),
//		func() {
//			namespace.ExpectListed(client, tenant, name)
//		},
//	)
func ConditionallyIt(
	description string,
	condition ConditionFunc,
	body func(),
	timeout ...float64,
) {
	check, conditionDescription := condition()
	ginkgo.It(description, func() {
		if !check() {
			message := "precondition failed"
			if conditionDescription != "" {
				message = fmt.Sprintf("%v: %v", message, conditionDescription)
			}
			ginkgo.Fail(message, 1)
		}
		body()
	}, timeout...)
}

type ConditionFunc func() (func() bool, string)

func If(description string, condition func() bool) ConditionFunc {
	return func() (func() bool, string) {
		return condition, description
	}
}

// IfAll holds only when every condition holds.
func IfAll(conditions ...ConditionFunc) ConditionFunc {
	return func() (func() bool, string) {
		checks := make([]func() bool, len(conditions))
		description := ""
		for i, c := range conditions {
			check, d := c()
			checks[i] = check
			if description != "" {
				description += " and "
			}
			description += d
		}

		return func() bool {
			for _, check := range checks {
				if !check() {
					return false
				}
			}
			return true
		}, description
	}
}
