// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import "adpress/internal/models"

// Labels are the fixed strings the renderer places on pages. The spec
// language selects the set; it never affects positioning.
type Labels struct {
	Offers  string
	Contact string
	Page    string
}

var labelTable = map[models.Language]Labels{
	models.LanguageEnglish: {
		Offers:  "Our Offers",
		Contact: "Contact",
		Page:    "Page",
	},
	models.LanguageGreek: {
		Offers:  "Οι Προσφορές μας",
		Contact: "Επικοινωνία",
		Page:    "Σελίδα",
	},
}

// labelsFor returns the label set for a language, falling back to
// English for unrecognized values.
func labelsFor(lang models.Language) Labels {
	if l, ok := labelTable[lang]; ok {
		return l
	}
	return labelTable[models.LanguageEnglish]
}
