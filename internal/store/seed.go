package store

// DemoRows is the bundled demonstration dataset. Some rows are planned
// without a date yet.
func DemoRows() []Row {
	return []Row{
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "30-ene-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "28-feb-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "03-abr-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "06-may-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "05-jun-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "04-jul-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "06-ago-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "04-sep-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "03-oct-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COLOMBIA", Date: "31-oct-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "30-ene-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "28-feb-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "05-abr-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "08-may-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "07-jun-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "06-jul-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "08-ago-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "06-sep-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "05-oct-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "COSTA RICA", Date: "07-nov-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: ""},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: ""},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-mar-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-abr-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-may-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-jun-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-jul-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-ago-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-sep-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COLOMBIA", Date: "15-oct-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: ""},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: ""},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-mar-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-abr-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-may-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-jun-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-jul-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-ago-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-sep-25"},
		{Provider: "Proveedor1", Brand: "CLARINS", Country: "COSTA RICA", Date: "15-oct-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "16-feb-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: ""},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-abr-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-may-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-jun-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-jul-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-ago-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-sep-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-oct-25"},
		{Provider: "Proveedor1", Brand: "JA", Country: "COLOMBIA", Date: "15-nov-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "05-feb-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: ""},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-abr-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-may-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-jun-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-jul-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-ago-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-sep-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-oct-25"},
		{Provider: "Proveedor1", Brand: "JA / SKILL", Country: "COSTA RICA", Date: "15-nov-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-feb-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-mar-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-abr-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-may-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-jun-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-jul-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-ago-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-sep-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "10-oct-25"},
		{Provider: "Proveedor1", Brand: "CHANEL", Country: "DFA/ NORA / IMAS", Date: "31-oct-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: ""},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: ""},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "31-mar-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "30-abr-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "30-may-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "30-jun-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "31-jul-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "31-ago-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "31-oct-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "COSTA RICA", Date: "30-nov-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: ""},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: ""},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "31-mar-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "30-abr-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "30-may-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "30-jun-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "31-jul-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "31-ago-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "31-oct-25"},
		{Provider: "Proveedor1", Brand: "HÉRMES", Country: "DFA/ NORA / IMAS", Date: "30-nov-25"},
		{Provider: "Proveedor1", Brand: "PUPA", Country: "COSTA RICA", Date: "15-jun-25"},
		{Provider: "Proveedor1", Brand: "PUPA", Country: "COSTA RICA", Date: "15-sep-25"},
		{Provider: "Proveedor1", Brand: "CARTIER", Country: "COSTA RICA", Date: "15-may-25"},
		{Provider: "Proveedor1", Brand: "CARTIER", Country: "COSTA RICA", Date: "15-ago-25"},
		{Provider: "Proveedor1", Brand: "ICONIC", Country: "COSTA RICA", Date: "15-jun-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-jun-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-jul-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-ago-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-sep-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-oct-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-nov-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COSTA RICA", Date: "06-dic-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-jun-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-jul-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-ago-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-sep-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-oct-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-nov-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "COLOMBIA", Date: "06-dic-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-jun-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-jul-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-ago-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-sep-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-oct-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-nov-25"},
		{Provider: "Proveedor2", Brand: "DIOR", Country: "CHILE", Date: "06-dic-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-jun-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-jul-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-ago-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-sep-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-oct-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-nov-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "CHILE", Date: "02-dic-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-jun-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-jul-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-ago-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-sep-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-oct-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-nov-25"},
		{Provider: "Proveedor2", Brand: "LFB", Country: "COSTA RICA", Date: "02-dic-25"},
		{Provider: "Proveedor3", Brand: "ACTIUM", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-jul-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-jul-25"},
		{Provider: "Proveedor3", Brand: "ACTIUM", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-ago-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-ago-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-sep-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-sep-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-oct-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-oct-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-nov-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-nov-25"},
		{Provider: "Proveedor3", Brand: "AGENCIAS FEDURO", Country: "PANAMA", Date: "10-dic-25"},
		{Provider: "Proveedor3", Brand: "BEAUTE PRESTIGE INTERNATIONAL SAS", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "BELUXE LATAM SA", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "DOLCE & GABBANA BEAUTY USA INC.", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "ESSENCE CORPORATION", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "ESTEE LAUDER AG LACHEN", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "MLL BRAND IMPORT LLC", Country: "PANAMA", Date: "06-dic-25"},
		{Provider: "Proveedor3", Brand: "SHISEIDO TRAVEL RETAIL AMERICAS", Country: "PANAMA", Date: "06-dic-25"},
	}
}
