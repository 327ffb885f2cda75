// File path: internal/kb/seed.go
package kb

// DefaultSections returns the starter forest imported when the section store
// is empty. Content mirrors the company handbook: general information,
// recruitment FAQ, and the HR leave policies grouped by leave type.
func DefaultSections() []Section {
	return []Section{
		{
			Name: "Company",
			Questions: []QAPair{
				{
					Question: "What does the company do?",
					Answer:   "Sanara is a rural tech company offering IT and non-IT recruitment, economic research, tech solutions, and e-commerce services.",
				},
				{
					Question: "Where is the company headquartered?",
					Answer:   "We are headquartered in Bellampalli, Telangana.",
				},
				{
					Question: "How do I contact the company?",
					Answer:   "Phone (+91) 7337386007, email enquiry@sanara.in.",
				},
			},
		},
		{
			Name: "Recruitment",
			Questions: []QAPair{
				{
					Question: "What is the hiring process?",
					Answer:   "Screening, interviews, and onboarding.",
				},
				{
					Question: "How long does recruitment take?",
					Answer:   "Typically two to three weeks from screening to offer.",
				},
			},
		},
		{
			Name: "HR Policies",
			Children: []Section{
				{
					Name: "Leave",
					Questions: []QAPair{
						{
							Question: "How do I apply for leave?",
							Answer:   "Submit a leave request to both your Team Lead and the HR Team, well in advance unless urgent.",
						},
						{
							Question: "Is leave a right?",
							Answer:   "Leave is not a right, except for Maternity Leave. Management has full discretion to grant, deny, or revoke leave.",
						},
					},
					Children: []Section{
						{
							Name: "Casual Leave",
							Questions: []QAPair{
								{
									Question: "How many casual leaves per year?",
									Answer:   "Maximum 12 days per year, pro-rata for mid-year joiners. Unused CL lapses at year end.",
								},
								{
									Question: "How many casual leaves at a time?",
									Answer:   "A maximum of 3 days can be availed at a time.",
								},
							},
						},
						{
							Name: "Sick Leave",
							Questions: []QAPair{
								{
									Question: "How many sick leaves per year?",
									Answer:   "Maximum 12 days per year, or pro-rata from date of joining. Unused SL lapses and cannot be encashed.",
								},
								{
									Question: "When is a medical certificate required?",
									Answer:   "When sick leave exceeds 2 days, from a currently practicing MBBS doctor.",
								},
							},
						},
						{
							Name: "Maternity Leave",
							Questions: []QAPair{
								{
									Question: "How much maternity leave is available?",
									Answer:   "Female employees are entitled to up to 3 months, before or after delivery, applied at least one month in advance with valid proof.",
								},
							},
						},
					},
				},
				{
					Name: "Work From Home",
					Questions: []QAPair{
						{
							Question: "How many WFH days per month?",
							Answer:   "All eligible employees except probationers may avail 2 WFH days per month; married women are entitled to 7.",
						},
					},
				},
				{
					Name: "Working Hours",
					Questions: []QAPair{
						{
							Question: "What are the working hours?",
							Answer:   "9:30 AM to 6:30 PM, Monday to Friday. Saturday availability may be required based on operational needs.",
						},
					},
				},
			},
		},
	}
}
