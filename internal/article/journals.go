package article

// Journals maps the short journal key used in filenames and configuration to
// the journal's full name as it appears in running headers. The name is what
// the assembler strips from main text.
var Journals = map[string]string{
	"BuffLR":    "Buffalo Law Review",
	"CaliLR":    "California Law Review",
	"CWRLR":     "Case Western Reserve Law Review",
	"CathULR":   "Catholic University Law Review",
	"ChiKLR":    "Chicago-Kent Law Review",
	"ClevSLR":   "Cleveland State Law Review",
	"CorLR":     "Cornell Law Review",
	"DePLR":     "DePaul Law Review",
	"DiLR":      "Dickinson Law Review (Penn State)",
	"FLRL":      "Florida Law Review",
	"FordLR":    "Fordham Law Review",
	"HastLJ":    "Hastings Law Journal",
	"IndLJ":     "Indiana Law Journal",
	"KentuLLJ":  "Kentucky Law Journal",
	"LouisLR":   "Louisiana Law Review",
	"MarqLR":    "Marquette Law Review",
	"MichLR":    "Michigan Law Review",
	"MinnLR":    "Minnesota Law Review",
	"MissLR":    "Missouri Law Review",
	"MontLR":    "Montana Law Review",
	"NCarolLR":  "North Carolina Law Review",
	"NDakoLR":   "North Dakota Law Review",
	"NotDamLR":  "Notre Dame Law Review",
	"SMULR":     "SMU Law Review",
	"SCarolLR":  "South Carolina Law Review",
	"SJohnLR":   "St. John's Law Review",
	"UChiLR":    "University of Chicago Law Review",
	"UMiaLR":    "University of Miami Law Review",
	"VandLR":    "Vanderbilt Law Review",
	"WashLeeLR": "Washington & Lee Law Review",
	"WashLR":    "Washington Law Review",
}

// JournalIDs maps the journal key to its numeric collection ID.
var JournalIDs = map[string]int{
	"BuffLR":    101,
	"CaliLR":    102,
	"CWRLR":     103,
	"CathULR":   104,
	"ChiKLR":    105,
	"ClevSLR":   106,
	"CorLR":     107,
	"DePLR":     108,
	"DiLR":      109,
	"FLRL":      110,
	"FordLR":    111,
	"HastLJ":    112,
	"IndLJ":     113,
	"KentuLLJ":  114,
	"LouisLR":   115,
	"MarqLR":    116,
	"MichLR":    117,
	"MinnLR":    118,
	"MissLR":    119,
	"MontLR":    120,
	"NCarolLR":  121,
	"NDakoLR":   122,
	"NotDamLR":  123,
	"SMULR":     124,
	"SCarolLR":  125,
	"SJohnLR":   126,
	"UChiLR":    127,
	"UMiaLR":    128,
	"VandLR":    129,
	"WashLeeLR": 130,
	"WashLR":    131,
}
