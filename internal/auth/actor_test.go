package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/JeremyDong22/gp-calculator/internal/auth"
)

var _ = Describe("Actor", func() {
	var projectRef auth.ProjectRef

	BeforeEach(func() {
		projectRef = auth.ProjectRef{ID: 10, ExecutionLeaderID: 42}
	})

	Describe("CanTransition", func() {
		Context("when the actor is the department head", func() {
			It("should pass every gate", func() {
				head := auth.Actor{ID: 1, Role: auth.RoleDepartmentHead}

				Expect(head.CanTransition(auth.StageTimesheetReview, projectRef)).To(BeTrue())
				Expect(head.CanTransition(auth.StageExpenseExecutor, projectRef)).To(BeTrue())
				Expect(head.CanTransition(auth.StageExpenseSecretary, projectRef)).To(BeTrue())
				Expect(head.CanTransition(auth.StageExpenseFinal, projectRef)).To(BeTrue())
			})
		})

		Context("timesheet review", func() {
			It("should allow a project manager who leads the project execution", func() {
				leader := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				Expect(leader.CanTransition(auth.StageTimesheetReview, projectRef)).To(BeTrue())
			})

			It("should deny a project manager of a different project", func() {
				other := auth.Actor{ID: 7, Role: auth.RoleProjectManager}
				Expect(other.CanTransition(auth.StageTimesheetReview, projectRef)).To(BeFalse())
			})

			It("should deny the execution leader when their role is not project manager", func() {
				// execution leadership alone is not enough for timesheet review
				leaderEmployee := auth.Actor{ID: 42, Role: auth.RoleEmployee}
				Expect(leaderEmployee.CanTransition(auth.StageTimesheetReview, projectRef)).To(BeFalse())
			})
		})

		Context("expense executor gate", func() {
			It("should allow the execution leader regardless of role", func() {
				leaderEmployee := auth.Actor{ID: 42, Role: auth.RoleEmployee}
				Expect(leaderEmployee.CanTransition(auth.StageExpenseExecutor, projectRef)).To(BeTrue())
			})

			It("should deny anyone else", func() {
				secretary := auth.Actor{ID: 5, Role: auth.RoleSecretary}
				Expect(secretary.CanTransition(auth.StageExpenseExecutor, projectRef)).To(BeFalse())
			})
		})

		Context("expense secretary gate", func() {
			It("should allow the secretary role", func() {
				secretary := auth.Actor{ID: 5, Role: auth.RoleSecretary}
				Expect(secretary.CanTransition(auth.StageExpenseSecretary, projectRef)).To(BeTrue())
			})

			It("should deny the execution leader", func() {
				leader := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				Expect(leader.CanTransition(auth.StageExpenseSecretary, projectRef)).To(BeFalse())
			})
		})

		Context("expense final gate", func() {
			It("should deny everyone except the department head", func() {
				leader := auth.Actor{ID: 42, Role: auth.RoleProjectManager}
				secretary := auth.Actor{ID: 5, Role: auth.RoleSecretary}
				employee := auth.Actor{ID: 9, Role: auth.RoleEmployee}

				Expect(leader.CanTransition(auth.StageExpenseFinal, projectRef)).To(BeFalse())
				Expect(secretary.CanTransition(auth.StageExpenseFinal, projectRef)).To(BeFalse())
				Expect(employee.CanTransition(auth.StageExpenseFinal, projectRef)).To(BeFalse())
			})
		})
	})

	Describe("ParseRole", func() {
		It("should accept every known role", func() {
			for _, name := range []string{"employee", "intern", "project_manager", "secretary", "department_head"} {
				role, err := auth.ParseRole(name)
				Expect(err).ToNot(HaveOccurred())
				Expect(role.IsValid()).To(BeTrue())
			}
		})

		It("should reject unknown roles", func() {
			_, err := auth.ParseRole("ceo")
			Expect(err).To(HaveOccurred())
		})
	})
})
