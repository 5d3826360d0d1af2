package holidays

// indianHolidaysData is the published holiday table for India, keyed by year.
var indianHolidaysData = map[int][]indianHoliday{
	2025: {
		{date: "2025-01-26", name: "Republic Day", kind: Public},
		{date: "2025-08-15", name: "Independence Day", kind: Public},
		{date: "2025-10-02", name: "Gandhi Jayanti", kind: Public},
		{date: "2025-01-01", name: "New Year's Day", kind: Bank},
		{date: "2025-01-14", name: "Makar Sankranti", kind: Public, states: []string{"AS", "BR", "CG", "GJ", "HR", "JH", "KA", "MP", "MH", "OR", "PB", "RJ", "TG", "TR", "UP", "UK", "WB"}},
		{date: "2025-01-14", name: "Pongal", kind: Public, states: []string{"TN", "PY"}},
		{date: "2025-01-15", name: "Thiruvalluvar Day", kind: Public, states: []string{"TN"}},
		{date: "2025-01-15", name: "Uzhavar Thirunal", kind: Public, states: []string{"TN"}},
		{date: "2025-01-16", name: "Mattu Pongal", kind: Public, states: []string{"TN"}},
		{date: "2025-01-17", name: "Guru Gobind Singh Jayanti", kind: Public, states: []string{"PB", "HR", "CH"}},
		{date: "2025-01-13", name: "Lohri", kind: Public, states: []string{"PB", "HR", "HP", "JK", "CH"}},
		{date: "2025-02-12", name: "Maha Shivratri", kind: Public},
		{date: "2025-02-26", name: "Saraswati Puja", kind: Public, states: []string{"WB", "AS", "OR", "BR", "JH"}},
		{date: "2025-03-13", name: "Holika Dahan", kind: Public, states: []string{"UP", "MP", "RJ", "HR", "PB", "DL", "UK"}},
		{date: "2025-03-14", name: "Holi", kind: Public},
		{date: "2025-03-30", name: "Eid ul-Fitr", kind: Public},
		{date: "2025-03-31", name: "Eid ul-Fitr (Second Day)", kind: Public, states: []string{"JK", "KL", "TG", "WB"}},
		{date: "2025-04-06", name: "Ram Navami", kind: Public},
		{date: "2025-04-13", name: "Vaisakhi/Baisakhi", kind: Public, states: []string{"PB", "HR", "HP", "JK", "CH"}},
		{date: "2025-04-14", name: "Ambedkar Jayanti", kind: Public},
		{date: "2025-04-14", name: "Tamil New Year (Puthandu)", kind: Public, states: []string{"TN", "PY"}},
		{date: "2025-04-14", name: "Vishu", kind: Public, states: []string{"KL"}},
		{date: "2025-04-14", name: "Pohela Boishakh", kind: Public, states: []string{"WB", "AS"}},
		{date: "2025-04-14", name: "Rongali Bihu", kind: Public, states: []string{"AS"}},
		{date: "2025-04-15", name: "Rongali Bihu (Second Day)", kind: Public, states: []string{"AS"}},
		{date: "2025-04-18", name: "Good Friday", kind: Public},
		{date: "2025-04-20", name: "Easter Sunday", kind: Optional},
		{date: "2025-04-21", name: "Easter Monday", kind: Optional, states: []string{"AN", "AS", "BR", "CG", "GA", "JH", "KL", "MN", "ML", "MZ", "NL", "OR", "PY", "SK", "TN", "TR", "WB"}},
		{date: "2025-05-01", name: "Labour Day/May Day", kind: Bank},
		{date: "2025-05-01", name: "Maharashtra Day", kind: Public, states: []string{"MH"}},
		{date: "2025-05-01", name: "Gujarat Day", kind: Public, states: []string{"GJ"}},
		{date: "2025-05-01", name: "Karnataka Rajyotsava", kind: Public, states: []string{"KA"}},
		{date: "2025-05-23", name: "Buddha Purnima", kind: Public},
		{date: "2025-06-06", name: "Eid ul-Adha (Bakri Eid)", kind: Public},
		{date: "2025-06-07", name: "Eid ul-Adha (Second Day)", kind: Public, states: []string{"JK", "WB", "KL"}},
		{date: "2025-06-29", name: "Jagannath Rath Yatra", kind: Public, states: []string{"OR", "JH", "WB", "AS"}},
		{date: "2025-07-05", name: "Muharram", kind: Public},
		{date: "2025-07-06", name: "Muharram (Second Day)", kind: Public, states: []string{"BR", "JH", "RJ", "UP"}},
		{date: "2025-08-09", name: "Raksha Bandhan", kind: Public, states: []string{"DL", "GJ", "HR", "HP", "JK", "MP", "MH", "OR", "PB", "RJ", "UP", "UK", "WB"}},
		{date: "2025-08-16", name: "Janmashtami", kind: Public},
		{date: "2025-08-17", name: "Janmashtami (Regional)", kind: Public, states: []string{"MH", "GJ", "RJ", "MP"}},
		{date: "2025-08-31", name: "Ganesh Chaturthi", kind: Public, states: []string{"MH", "GJ", "TG", "AP", "KA", "GA"}},
		{date: "2025-09-05", name: "Eid-e-Milad", kind: Public},
		{date: "2025-09-17", name: "Vishwakarma Puja", kind: Public, states: []string{"WB", "OR", "JH", "AS", "TR"}},
		{date: "2025-09-19", name: "Onam", kind: Public, states: []string{"KL"}},
		{date: "2025-10-02", name: "Dussehra (Vijaya Dashami)", kind: Public},
		{date: "2025-10-20", name: "Diwali (Lakshmi Puja)", kind: Public},
		{date: "2025-10-21", name: "Govardhan Puja", kind: Public, states: []string{"DL", "HR", "PB", "UP", "UK"}},
		{date: "2025-10-22", name: "Bhai Dooj", kind: Public, states: []string{"DL", "HR", "MP", "MH", "PB", "RJ", "UP", "UK"}},
		{date: "2025-10-31", name: "Kali Puja", kind: Public, states: []string{"WB", "AS"}},
		{date: "2025-10-31", name: "Sardar Vallabhbhai Patel Jayanti", kind: Optional},
		{date: "2025-11-05", name: "Guru Nanak Jayanti", kind: Public},
		{date: "2025-11-16", name: "Chhath Puja", kind: Public, states: []string{"BR", "JH", "UP", "DL"}},
		{date: "2025-11-17", name: "Chhath Puja (Usha Arghya)", kind: Public, states: []string{"BR", "JH", "UP"}},
		{date: "2025-12-24", name: "Christmas Eve", kind: Optional, states: []string{"GA", "MN", "MZ", "NL", "AN", "KL"}},
		{date: "2025-12-25", name: "Christmas Day", kind: Public},
		{date: "2025-01-20", name: "Tripura Foundation Day", kind: Public, states: []string{"TR"}},
		{date: "2025-02-20", name: "Arunachal Pradesh Statehood Day", kind: Public, states: []string{"AR"}},
		{date: "2025-03-03", name: "Dolyatra", kind: Public, states: []string{"WB", "AS"}},
		{date: "2025-03-22", name: "Bihar Day", kind: Public, states: []string{"BR"}},
		{date: "2025-04-15", name: "Himachal Pradesh Day", kind: Public, states: []string{"HP"}},
		{date: "2025-05-16", name: "Sikkim Day", kind: Public, states: []string{"SK"}},
		{date: "2025-06-15", name: "Eid-ul-Fitr (Regional)", kind: Optional, states: []string{"JK"}},
		{date: "2025-07-23", name: "Harela Festival", kind: Public, states: []string{"UK"}},
		{date: "2025-08-20", name: "Parsi New Year (Navroz)", kind: Public, states: []string{"MH", "GJ"}},
		{date: "2025-09-02", name: "Teej", kind: Public, states: []string{"RJ", "HP", "UK", "PB", "HR"}},
		{date: "2025-09-06", name: "Onam (Thiruvonam)", kind: Public, states: []string{"KL"}},
		{date: "2025-10-09", name: "Ayudha Puja", kind: Public, states: []string{"KA", "TN", "AP", "TG", "KL"}},
		{date: "2025-11-01", name: "Karnataka Rajyotsava", kind: Public, states: []string{"KA"}},
		{date: "2025-11-07", name: "Goa Liberation Day", kind: Public, states: []string{"GA"}},
		{date: "2025-11-14", name: "Nehru Jayanti (Children's Day)", kind: Observance},
		{date: "2025-12-01", name: "Nagaland Statehood Day", kind: Public, states: []string{"NL"}},
		{date: "2025-12-19", name: "Goa Liberation Day", kind: Public, states: []string{"GA"}},
		{date: "2025-04-01", name: "Annual Closing of Banks", kind: Bank},
		{date: "2025-06-30", name: "Half Yearly Closing", kind: Bank},
		{date: "2025-10-01", name: "Half Yearly Closing", kind: Bank},
		{date: "2025-03-31", name: "Annual Closing of Banks", kind: Bank},
	},
	2026: {
		{date: "2026-01-26", name: "Republic Day", kind: Public},
		{date: "2026-08-15", name: "Independence Day", kind: Public},
		{date: "2026-10-02", name: "Gandhi Jayanti", kind: Public},
		{date: "2026-01-01", name: "New Year's Day", kind: Bank},
		{date: "2026-01-14", name: "Makar Sankranti", kind: Public, states: []string{"AS", "BR", "CG", "GJ", "HR", "JH", "KA", "MP", "MH", "OR", "PB", "RJ", "TG", "TR", "UP", "UK", "WB"}},
		{date: "2026-01-14", name: "Pongal", kind: Public, states: []string{"TN", "PY"}},
		{date: "2026-01-15", name: "Thiruvalluvar Day", kind: Public, states: []string{"TN"}},
		{date: "2026-01-15", name: "Uzhavar Thirunal", kind: Public, states: []string{"TN"}},
		{date: "2026-01-16", name: "Mattu Pongal", kind: Public, states: []string{"TN"}},
		{date: "2026-01-06", name: "Guru Gobind Singh Jayanti", kind: Public, states: []string{"PB", "HR", "CH"}},
		{date: "2026-01-13", name: "Lohri", kind: Public, states: []string{"PB", "HR", "HP", "JK", "CH"}},
		{date: "2026-03-01", name: "Maha Shivratri", kind: Public},
		{date: "2026-02-15", name: "Saraswati Puja", kind: Public, states: []string{"WB", "AS", "OR", "BR", "JH"}},
		{date: "2026-03-02", name: "Holika Dahan", kind: Public, states: []string{"UP", "MP", "RJ", "HR", "PB", "DL", "UK"}},
		{date: "2026-03-03", name: "Holi", kind: Public},
		{date: "2026-03-20", name: "Eid ul-Fitr", kind: Public},
		{date: "2026-03-21", name: "Eid ul-Fitr (Second Day)", kind: Public, states: []string{"JK", "KL", "TG", "WB"}},
		{date: "2026-03-25", name: "Ram Navami", kind: Public},
		{date: "2026-04-02", name: "Vaisakhi/Baisakhi", kind: Public, states: []string{"PB", "HR", "HP", "JK", "CH"}},
		{date: "2026-04-03", name: "Good Friday", kind: Public},
		{date: "2026-04-05", name: "Easter Sunday", kind: Optional},
		{date: "2026-04-06", name: "Easter Monday", kind: Optional, states: []string{"AN", "AS", "BR", "CG", "GA", "JH", "KL", "MN", "ML", "MZ", "NL", "OR", "PY", "SK", "TN", "TR", "WB"}},
		{date: "2026-04-14", name: "Ambedkar Jayanti", kind: Public},
		{date: "2026-04-14", name: "Tamil New Year (Puthandu)", kind: Public, states: []string{"TN", "PY"}},
		{date: "2026-04-14", name: "Vishu", kind: Public, states: []string{"KL"}},
		{date: "2026-04-14", name: "Pohela Boishakh", kind: Public, states: []string{"WB", "AS"}},
		{date: "2026-04-14", name: "Rongali Bihu", kind: Public, states: []string{"AS"}},
		{date: "2026-04-15", name: "Rongali Bihu (Second Day)", kind: Public, states: []string{"AS"}},
		{date: "2026-05-01", name: "Labour Day/May Day", kind: Bank},
		{date: "2026-05-01", name: "Maharashtra Day", kind: Public, states: []string{"MH"}},
		{date: "2026-05-01", name: "Gujarat Day", kind: Public, states: []string{"GJ"}},
		{date: "2026-05-01", name: "Karnataka Rajyotsava", kind: Public, states: []string{"KA"}},
		{date: "2026-05-12", name: "Buddha Purnima", kind: Public},
		{date: "2026-05-27", name: "Eid ul-Adha (Bakri Eid)", kind: Public},
		{date: "2026-05-28", name: "Eid ul-Adha (Second Day)", kind: Public, states: []string{"JK", "WB", "KL"}},
		{date: "2026-06-16", name: "Muharram", kind: Public},
		{date: "2026-06-17", name: "Muharram (Second Day)", kind: Public, states: []string{"BR", "JH", "RJ", "UP"}},
		{date: "2026-06-18", name: "Jagannath Rath Yatra", kind: Public, states: []string{"OR", "JH", "WB", "AS"}},
		{date: "2026-07-29", name: "Raksha Bandhan", kind: Public, states: []string{"DL", "GJ", "HR", "HP", "JK", "MP", "MH", "OR", "PB", "RJ", "UP", "UK", "WB"}},
		{date: "2026-08-05", name: "Janmashtami", kind: Public},
		{date: "2026-08-06", name: "Janmashtami (Regional)", kind: Public, states: []string{"MH", "GJ", "RJ", "MP"}},
		{date: "2026-08-20", name: "Ganesh Chaturthi", kind: Public, states: []string{"MH", "GJ", "TG", "AP", "KA", "GA"}},
		{date: "2026-08-25", name: "Eid-e-Milad", kind: Public},
		{date: "2026-09-08", name: "Onam", kind: Public, states: []string{"KL"}},
		{date: "2026-09-17", name: "Vishwakarma Puja", kind: Public, states: []string{"WB", "OR", "JH", "AS", "TR"}},
		{date: "2026-09-21", name: "Dussehra (Vijaya Dashami)", kind: Public},
		{date: "2026-09-28", name: "Ayudha Puja", kind: Public, states: []string{"KA", "TN", "AP", "TG", "KL"}},
		{date: "2026-11-01", name: "Karnataka Rajyotsava", kind: Public, states: []string{"KA"}},
		{date: "2026-11-05", name: "Chhath Puja", kind: Public, states: []string{"BR", "JH", "UP", "DL"}},
		{date: "2026-11-06", name: "Chhath Puja (Usha Arghya)", kind: Public, states: []string{"BR", "JH", "UP"}},
		{date: "2026-11-08", name: "Diwali (Lakshmi Puja)", kind: Public},
		{date: "2026-11-09", name: "Govardhan Puja", kind: Public, states: []string{"DL", "HR", "PB", "UP", "UK"}},
		{date: "2026-11-10", name: "Bhai Dooj", kind: Public, states: []string{"DL", "HR", "MP", "MH", "PB", "RJ", "UP", "UK"}},
		{date: "2026-11-19", name: "Kali Puja", kind: Public, states: []string{"WB", "AS"}},
		{date: "2026-11-24", name: "Guru Nanak Jayanti", kind: Public},
		{date: "2026-12-24", name: "Christmas Eve", kind: Optional, states: []string{"GA", "MN", "MZ", "NL", "AN", "KL"}},
		{date: "2026-12-25", name: "Christmas Day", kind: Public},
		{date: "2026-01-21", name: "Tripura Foundation Day", kind: Public, states: []string{"TR"}},
		{date: "2026-02-20", name: "Arunachal Pradesh Statehood Day", kind: Public, states: []string{"AR"}},
		{date: "2026-02-22", name: "Dolyatra", kind: Public, states: []string{"WB", "AS"}},
		{date: "2026-03-22", name: "Bihar Day", kind: Public, states: []string{"BR"}},
		{date: "2026-04-15", name: "Himachal Pradesh Day", kind: Public, states: []string{"HP"}},
		{date: "2026-05-16", name: "Sikkim Day", kind: Public, states: []string{"SK"}},
		{date: "2026-07-23", name: "Harela Festival", kind: Public, states: []string{"UK"}},
		{date: "2026-08-09", name: "Parsi New Year (Navroz)", kind: Public, states: []string{"MH", "GJ"}},
		{date: "2026-08-22", name: "Teej", kind: Public, states: []string{"RJ", "HP", "UK", "PB", "HR"}},
		{date: "2026-09-25", name: "Onam (Thiruvonam)", kind: Public, states: []string{"KL"}},
		{date: "2026-10-31", name: "Sardar Vallabhbhai Patel Jayanti", kind: Optional},
		{date: "2026-11-07", name: "Goa Liberation Day", kind: Public, states: []string{"GA"}},
		{date: "2026-11-14", name: "Nehru Jayanti (Children's Day)", kind: Observance},
		{date: "2026-12-01", name: "Nagaland Statehood Day", kind: Public, states: []string{"NL"}},
		{date: "2026-12-19", name: "Goa Liberation Day", kind: Public, states: []string{"GA"}},
		{date: "2026-04-01", name: "Annual Closing of Banks", kind: Bank},
		{date: "2026-06-30", name: "Half Yearly Closing", kind: Bank},
		{date: "2026-10-01", name: "Half Yearly Closing", kind: Bank},
		{date: "2026-03-31", name: "Annual Closing of Banks", kind: Bank},
	},
}
