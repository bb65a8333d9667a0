package model

import (
	"bestevents/shared/model"
	"fmt"
	"strconv"
	"strings"
)

const (
	EntityName = "employee"

	// SalaryMin and SalaryMax bound the salary assigned when none is given.
	SalaryMin = 30000
	SalaryMax = 100000
)

var Columns = []string{"ID", "Name", "Department", "Job Title", "Salary", "Subordinates"}

// Employee is a member of staff. Employees with a managerial job title act as
// managers and keep the ids of the employees reporting to them.
type Employee struct {
	ID             int      `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Department     string   `json:"department" yaml:"department"`
	JobTitle       JobTitle `json:"job_title" yaml:"job_title"`
	Salary         int      `json:"salary" yaml:"salary"`
	Subordinates   []int    `json:"subordinates,omitempty" yaml:"subordinates,omitempty"`
	model.Metadata `yaml:",inline"`
}

func (e Employee) IsManager() bool {
	return e.JobTitle.IsManagerial()
}

func (e Employee) HasSubordinate(id int) bool {
	for _, sub := range e.Subordinates {
		if sub == id {
			return true
		}
	}

	return false
}

func (e Employee) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Employee ID: %d\n", e.ID)
	fmt.Fprintf(&b, "Name: %s\n", e.Name)
	fmt.Fprintf(&b, "Department: %s\n", e.Department)
	fmt.Fprintf(&b, "Job Title: %s\n", e.JobTitle.Label())
	fmt.Fprintf(&b, "Salary: %d", e.Salary)

	if e.IsManager() {
		fmt.Fprintf(&b, "\nSubordinates: %s", joinIDs(e.Subordinates))
	}

	return b.String()
}

func (e Employee) Row() []string {
	return []string{
		strconv.Itoa(e.ID),
		e.Name,
		e.Department,
		e.JobTitle.Label(),
		strconv.Itoa(e.Salary),
		joinIDs(e.Subordinates),
	}
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}
