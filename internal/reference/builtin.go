package reference

// Builtin returns the embedded reference table of presidential and
// government VIP airframes plus military VIP callsign patterns. It is the
// fallback when no external CSV is configured.
func Builtin() *Table {
	entries := make([]Entry, 0, len(builtinAircraft)+len(builtinPatterns))
	entries = append(entries, builtinAircraft...)
	entries = append(entries, builtinPatterns...)
	return New(entries)
}

func govEntry(hex, country, name, registration, typeCode string) Entry {
	return Entry{
		Identifier:   hex,
		Name:         name,
		Registration: registration,
		Type:         typeCode,
		Category:     CategoryGovernment,
		Tags:         []string{country},
	}
}

// builtinAircraft is keyed by ICAO hex. Tag 1 holds the operating country.
var builtinAircraft = []Entry{
	// USA presidential and executive fleet
	govEntry("ae001f", "USA", "Air Force One (VC-25A)", "82-8000", "VC25"),
	govEntry("ae0020", "USA", "Air Force One (VC-25A)", "92-9000", "VC25"),
	govEntry("ae001c", "USA", "Air Force Two (C-32A)", "98-0001", "C32"),
	govEntry("ae001d", "USA", "Air Force Two (C-32A)", "98-0002", "C32"),
	govEntry("ae4a48", "USA", "C-32A VIP Transport", "99-6143", "C32"),
	govEntry("ae01fa", "USA", "C-40B Executive Transport", "01-0040", "C40"),
	govEntry("ae01fb", "USA", "C-40B Executive Transport", "01-0041", "C40"),
	govEntry("ae010c", "USA", "C-37A Gulfstream VIP", "97-0400", "C37A"),
	govEntry("ae010d", "USA", "C-37A Gulfstream VIP", "97-0401", "C37A"),
	govEntry("ae0100", "USA", "C-37B Gulfstream VIP", "09-0525", "C37B"),
	govEntry("ae0101", "USA", "C-37B Gulfstream VIP", "09-0540", "C37B"),
	govEntry("ae0414", "USA", "E-4B Nightwatch NAOC", "73-1676", "E4B"),
	govEntry("ae0415", "USA", "E-4B Nightwatch NAOC", "74-0787", "E4B"),
	govEntry("ae0416", "USA", "E-4B Nightwatch NAOC", "75-0125", "E4B"),
	govEntry("ae0417", "USA", "E-4B Nightwatch NAOC", "75-0126", "E4B"),
	govEntry("ae0419", "USA", "E-6B Mercury TACAMO", "162782", "E6"),
	govEntry("ae041a", "USA", "E-6B Mercury TACAMO", "162783", "E6"),
	govEntry("ae041b", "USA", "E-6B Mercury TACAMO", "163918", "E6"),

	// Russia presidential fleet
	govEntry("155026", "Russia", "IL-96-300PU Presidential", "RA-96016", "IL96"),
	govEntry("155027", "Russia", "IL-96-300PU Presidential", "RA-96017", "IL96"),
	govEntry("155028", "Russia", "IL-96-300PU Presidential", "RA-96018", "IL96"),
	govEntry("155029", "Russia", "IL-96-300PU Presidential", "RA-96019", "IL96"),
	govEntry("15502a", "Russia", "IL-96-300PU Presidential", "RA-96020", "IL96"),
	govEntry("15502b", "Russia", "IL-96-300PU Presidential", "RA-96021", "IL96"),
	govEntry("15502c", "Russia", "IL-96-300PU Presidential", "RA-96022", "IL96"),
	govEntry("150d4e", "Russia", "Tu-214PU Government", "RA-64517", "T214"),
	govEntry("150d4f", "Russia", "Tu-214PU Government", "RA-64520", "T214"),
	govEntry("150125", "Russia", "IL-96-400 Presidential", "RA-96102", "IL96"),
	govEntry("155001", "Russia", "Tu-214SR Government", "RA-64515", "T214"),
	govEntry("155002", "Russia", "Tu-214SR Government", "RA-64516", "T214"),
	govEntry("145624", "Russia", "Il-80 Airborne Command Post", "RA-86147", "IL86"),
	govEntry("145625", "Russia", "Il-80 Airborne Command Post", "RA-86148", "IL86"),

	// China government and military
	govEntry("780a71", "China", "B747-8i Presidential", "B-2479", "B748"),
	govEntry("780a72", "China", "B747-8i VIP", "B-2480", "B748"),
	govEntry("780b71", "China", "B737-800 Government", "B-4026", "B738"),
	govEntry("780b72", "China", "B737-800 Government", "B-4027", "B738"),
	govEntry("780c01", "China", "A319CJ Government", "B-4090", "A319"),
	govEntry("780c02", "China", "A319CJ Government", "B-4091", "A319"),
	govEntry("781011", "China", "PLAAF VIP Transport", "B-4025", "B738"),

	// North Korea government
	govEntry("720101", "North Korea", "IL-62M Chammae-1", "P-618", "IL62"),
	govEntry("720102", "North Korea", "IL-62M Government", "P-885", "IL62"),
	govEntry("720201", "North Korea", "Tu-154 Government", "P-552", "T154"),
	govEntry("720301", "North Korea", "AN-148 Government", "P-671", "A148"),
	govEntry("720302", "North Korea", "AN-148 Government", "P-672", "A148"),

	// Ukraine government fleet
	govEntry("508a28", "Ukraine", "A319CJ Presidential", "UR-ABA", "A319"),
	govEntry("508016", "Ukraine", "IL-62M Government", "UR-86527", "IL62"),
	govEntry("508017", "Ukraine", "IL-62M Government", "UR-86528", "IL62"),
	govEntry("508a01", "Ukraine", "An-148 Government", "UR-UKR", "A148"),

	// Czech Republic government fleet
	govEntry("498da4", "Czech Rep", "A319CJ Government", "OK-GOV", "A319"),
	govEntry("498d4a", "Czech Rep", "CL-601 Challenger VIP", "OK-BYR", "CL60"),
	govEntry("498012", "Czech Rep", "A319 Air Force", "3085", "A319"),

	// United Kingdom royal and government fleet
	govEntry("43c6c4", "UK", "RAF Voyager A330 MRTT", "ZZ330", "A332"),
	govEntry("43c6c5", "UK", "RAF Voyager A330 MRTT", "ZZ331", "A332"),
	govEntry("43c6c6", "UK", "RAF Voyager A330 MRTT", "ZZ332", "A332"),
	govEntry("43c2f0", "UK", "BAe 146 Royal Flight", "ZE700", "B461"),
	govEntry("43c2f1", "UK", "BAe 146 Royal Flight", "ZE701", "B461"),

	// France government fleet
	govEntry("3b75a6", "France", "A330-200 Cotam 001", "F-RARF", "A332"),
	govEntry("3b75a5", "France", "A330-200 Cotam 002", "F-RARE", "A332"),
	govEntry("3b7541", "France", "Falcon 7X VIP", "F-RAFB", "FA7X"),
	govEntry("3b7542", "France", "Falcon 7X VIP", "F-RAFC", "FA7X"),
	govEntry("3b7543", "France", "Falcon 900 VIP", "F-RAFD", "F900"),

	// Germany government fleet (Flugbereitschaft)
	govEntry("3f4615", "Germany", "A350-900 Konrad Adenauer", "10+01", "A359"),
	govEntry("3f4616", "Germany", "A350-900 Theodor Heuss", "10+02", "A359"),
	govEntry("3f4617", "Germany", "A350-900 Kurt Schumacher", "10+03", "A359"),
	govEntry("3f4544", "Germany", "A319CJ VIP", "15+03", "A319"),
	govEntry("3f457c", "Germany", "Global 5000 VIP", "14+01", "GL5T"),

	// Italy government fleet
	govEntry("33ff01", "Italy", "A340-500 Presidential", "I-TALY", "A345"),
	govEntry("33ff02", "Italy", "A319CJ VIP", "MM62243", "A319"),
	govEntry("33ff10", "Italy", "Falcon 900EX VIP", "MM62210", "F900"),

	// Spain government fleet
	govEntry("34318c", "Spain", "A310-300 VIP", "T.22-1", "A310"),
	govEntry("343191", "Spain", "Falcon 900 VIP", "T.18-1", "F900"),

	// Poland government fleet
	govEntry("489702", "Poland", "B737-800 Head of State", "SP-LIG", "B738"),
	govEntry("489460", "Poland", "Gulfstream G550 VIP", "0110", "G550"),
	govEntry("489461", "Poland", "Gulfstream G550 VIP", "0111", "G550"),

	// Netherlands government fleet
	govEntry("484101", "Netherlands", "B737-700BBJ Royal", "PH-GOV", "B737"),
	govEntry("484102", "Netherlands", "Gulfstream G650 VIP", "PH-GVI", "G650"),

	// Belgium government fleet
	govEntry("44d001", "Belgium", "ERJ-135 VIP", "CE-01", "E135"),
	govEntry("44d003", "Belgium", "Falcon 7X VIP", "CD-01", "FA7X"),

	// Austria, Switzerland, Nordics
	govEntry("440101", "Austria", "PC-12 VIP", "OE-EPM", "PC12"),
	govEntry("4b0011", "Switzerland", "Citation Excel VIP", "T-784", "C56X"),
	govEntry("4b0013", "Switzerland", "Falcon 900 VIP", "T-785", "F900"),
	govEntry("4a8001", "Sweden", "Gulfstream G550 VIP", "102001", "G550"),
	govEntry("478101", "Norway", "Falcon 7X VIP", "053", "FA7X"),
	govEntry("459901", "Denmark", "CL-604 Challenger VIP", "C-080", "CL60"),
	govEntry("461e01", "Finland", "CL-604 Challenger VIP", "CC-1", "CL60"),

	// Turkey government fleet
	govEntry("4b8001", "Turkey", "A330-200 VIP", "TC-TUR", "A332"),
	govEntry("4b8002", "Turkey", "A319CJ VIP", "TC-ANA", "A319"),

	// Belarus government fleet
	govEntry("151db8", "Belarus", "B737-800 Presidential", "EW-001PA", "B738"),
	govEntry("151db9", "Belarus", "B767 VIP", "EW-001PB", "B767"),

	// Hungary, Romania, Balkans
	govEntry("47a001", "Hungary", "Falcon 7X VIP", "606", "FA7X"),
	govEntry("4a1001", "Romania", "B737-700BBJ VIP", "YR-BBJ", "B737"),
	govEntry("4d0101", "Serbia", "Falcon 900 VIP", "YU-FSS", "F900"),
	govEntry("501c01", "Croatia", "CL-604 Challenger VIP", "9A-CRO", "CL60"),

	// Baltics and the rest of Europe
	govEntry("511017", "Estonia", "CRJ-700 Government", "ES-PVG", "CRJ7"),
	govEntry("502c03", "Latvia", "A220-300 Government", "YL-LFB", "BCS3"),
	govEntry("503c01", "Lithuania", "L-410 Government", "01", "L410"),
	govEntry("4c8001", "Ireland", "LJ-45 Learjet VIP", "252", "LJ45"),
	govEntry("490501", "Portugal", "Falcon 50 VIP", "17401", "FA50"),
	govEntry("468c01", "Greece", "ERJ-135 VIP", "145-208", "E135"),
	govEntry("506c01", "Slovakia", "Fokker 100 VIP", "OM-BYA", "F100"),
	govEntry("4d0001", "Slovenia", "Falcon 2000 VIP", "S5-BAV", "F2TH"),
	govEntry("450501", "Bulgaria", "Falcon 2000 VIP", "LZ-OOI", "F2TH"),
	govEntry("4b0501", "Luxembourg", "LJ-45 Learjet VIP", "NAT-01", "LJ45"),
	govEntry("4d8001", "Cyprus", "A319CJ Government", "5B-CYP", "A319"),
	govEntry("4d9001", "Malta", "B200 King Air VIP", "AS1428", "BE20"),
}

func patternEntry(pattern, country string) Entry {
	return Entry{
		Identifier: pattern,
		Name:       country + " VIP flight",
		Category:   CategoryGovernment,
		Tags:       []string{country},
	}
}

// builtinPatterns are callsign prefix wildcards for VIP and head-of-state
// flights. Prefixes known to cause false positives (RUS, TUR) are deliberately
// absent, matching the upstream curation.
var builtinPatterns = []Entry{
	patternEntry("AF1*", "USA"),
	patternEntry("AF2*", "USA"),
	patternEntry("SAM*", "USA"),
	patternEntry("EXEC*", "USA"),
	patternEntry("VENUS*", "USA"),
	patternEntry("RSD*", "Russia"),
	patternEntry("ROSSIYA*", "Russia"),
	patternEntry("RFF*", "Russia"),
	patternEntry("CZAF*", "Czech Rep"),
	patternEntry("CEF*", "Czech Rep"),
	patternEntry("UKRAINA*", "Ukraine"),
	patternEntry("UKF*", "Ukraine"),
	patternEntry("CCA*", "China"),
	patternEntry("CXA*", "China"),
	patternEntry("PRK*", "North Korea"),
	patternEntry("RRR*", "UK"),
	patternEntry("RFR*", "UK"),
	patternEntry("KITTY*", "UK"),
	patternEntry("ASCOT*", "UK"),
	patternEntry("COTAM*", "France"),
	patternEntry("CTM*", "France"),
	patternEntry("FAF*", "France"),
	patternEntry("GAF*", "Germany"),
	patternEntry("GAFTT*", "Germany"),
	patternEntry("IAM*", "Italy"),
	patternEntry("AME*", "Spain"),
	patternEntry("PLF*", "Poland"),
	patternEntry("NAF*", "Netherlands"),
	patternEntry("BAF*", "Belgium"),
	patternEntry("AUA*", "Austria"),
	patternEntry("SUI*", "Switzerland"),
	patternEntry("SVF*", "Sweden"),
	patternEntry("NOW*", "Norway"),
	patternEntry("DAF*", "Denmark"),
	patternEntry("FINNAF*", "Finland"),
	patternEntry("PAF*", "Portugal"),
	patternEntry("HAF*", "Greece"),
	patternEntry("HDF*", "Hungary"),
	patternEntry("ROF*", "Romania"),
	patternEntry("BUF*", "Bulgaria"),
	patternEntry("HRZ*", "Croatia"),
	patternEntry("SQF*", "Slovakia"),
	patternEntry("EEF*", "Estonia"),
	patternEntry("LYF*", "Lithuania"),
	patternEntry("IRL*", "Ireland"),
	patternEntry("THK*", "Turkey"),
	patternEntry("TUAF*", "Turkey"),
	patternEntry("BRU*", "Belarus"),
	patternEntry("SRB*", "Serbia"),
	patternEntry("LUX*", "Luxembourg"),
	patternEntry("ICE*", "Iceland"),
	patternEntry("CYP*", "Cyprus"),
	patternEntry("MLT*", "Malta"),
}
