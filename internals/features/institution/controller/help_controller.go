package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "madrasa_backend/internals/helpers"
)

type HelpTopic struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

var helpTopics = []HelpTopic{
	{
		Key:   "getting-started",
		Title: "Getting started",
		Sections: []string{
			"Complete the institution profile under Institution Settings (name, address, logo, currency).",
			"Create classes first, then add teachers and students and assign each student to a class.",
			"Invite staff from User Management and give each account the right role.",
		},
	},
	{
		Key:   "students",
		Title: "Students, alumni and lillah",
		Sections: []string{
			"Student codes are generated automatically when left empty.",
			"A roll number must be unique inside its class.",
			"Use Graduate to move a student to the alumni list; the class assignment is cleared.",
			"Lillah students are supported by sponsors and are skipped by monthly fee generation.",
		},
	},
	{
		Key:   "attendance",
		Title: "Attendance",
		Sections: []string{
			"Pick a class and a date, mark every student, then save once for the whole class.",
			"Attendance rate counts present and late days against all marked days.",
		},
	},
	{
		Key:   "exams",
		Title: "Exams and results",
		Sections: []string{
			"Create the exam, enter marks per subject, then publish the exam to show results publicly.",
			"Grades: A+ 80 and above, A 70, A- 60, B 50, C 40, D 33, below 33 is F.",
			"Students with equal percentage share the same position.",
		},
	},
	{
		Key:   "finance",
		Title: "Fees, salaries, donations and expenses",
		Sections: []string{
			"Generate monthly fees from each class monthly fee; existing fees are never duplicated.",
			"Unpaid fees past their due date are marked overdue every night.",
			"Salary sheets for active teachers are prepared on the first day of every month.",
			"Online donations require the Midtrans gateway to be enabled under Payment Gateways.",
		},
	},
	{
		Key:   "payment-gateways",
		Title: "Payment gateways",
		Sections: []string{
			"Credentials are always shown masked; leave a field unchanged to keep the stored value.",
			"Disable a gateway to stop accepting online payments through it.",
		},
	},
}

// GET /api/a/help
func HelpTopics(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", helpTopics)
}
