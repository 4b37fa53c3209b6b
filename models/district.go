package models

// District is one administrative unit of the state. The registry below is
// seeded into the districts collection on first startup and never mutated.
type District struct {
	Code   string `json:"code" bson:"code"`
	Name   string `json:"name" bson:"name"`
	NameHi string `json:"name_hi" bson:"name_hi"`
	Region string `json:"region" bson:"region"` // North, South, East, West, Central
}

// Registry holds the 75 districts of Uttar Pradesh.
var Registry = []District{
	{Code: "UP001", Name: "Agra", NameHi: "आगरा", Region: "West"},
	{Code: "UP002", Name: "Aligarh", NameHi: "अलीगढ़", Region: "West"},
	{Code: "UP003", Name: "Allahabad", NameHi: "प्रयागराज", Region: "South"},
	{Code: "UP004", Name: "Ambedkar Nagar", NameHi: "अम्बेडकर नगर", Region: "East"},
	{Code: "UP005", Name: "Amethi", NameHi: "अमेठी", Region: "Central"},
	{Code: "UP006", Name: "Amroha", NameHi: "अमरोहा", Region: "West"},
	{Code: "UP007", Name: "Auraiya", NameHi: "औरैया", Region: "West"},
	{Code: "UP008", Name: "Azamgarh", NameHi: "आजमगढ़", Region: "East"},
	{Code: "UP009", Name: "Baghpat", NameHi: "बागपत", Region: "West"},
	{Code: "UP010", Name: "Bahraich", NameHi: "बहराइच", Region: "North"},
	{Code: "UP011", Name: "Ballia", NameHi: "बलिया", Region: "East"},
	{Code: "UP012", Name: "Balrampur", NameHi: "बलरामपुर", Region: "North"},
	{Code: "UP013", Name: "Banda", NameHi: "बांदा", Region: "South"},
	{Code: "UP014", Name: "Barabanki", NameHi: "बाराबंकी", Region: "Central"},
	{Code: "UP015", Name: "Bareilly", NameHi: "बरेली", Region: "North"},
	{Code: "UP016", Name: "Basti", NameHi: "बस्ती", Region: "East"},
	{Code: "UP017", Name: "Bhadohi", NameHi: "भदोही", Region: "South"},
	{Code: "UP018", Name: "Bijnor", NameHi: "बिजनौर", Region: "West"},
	{Code: "UP019", Name: "Budaun", NameHi: "बदायूं", Region: "North"},
	{Code: "UP020", Name: "Bulandshahr", NameHi: "बुलंदशहर", Region: "West"},
	{Code: "UP021", Name: "Chandauli", NameHi: "चंदौली", Region: "East"},
	{Code: "UP022", Name: "Chitrakoot", NameHi: "चित्रकूट", Region: "South"},
	{Code: "UP023", Name: "Deoria", NameHi: "देवरिया", Region: "East"},
	{Code: "UP024", Name: "Etah", NameHi: "एटा", Region: "West"},
	{Code: "UP025", Name: "Etawah", NameHi: "इटावा", Region: "West"},
	{Code: "UP026", Name: "Ayodhya", NameHi: "अयोध्या", Region: "Central"},
	{Code: "UP027", Name: "Farrukhabad", NameHi: "फर्रुखाबाद", Region: "West"},
	{Code: "UP028", Name: "Fatehpur", NameHi: "फतेहपुर", Region: "Central"},
	{Code: "UP029", Name: "Firozabad", NameHi: "फिरोजाबाद", Region: "West"},
	{Code: "UP030", Name: "Gautam Buddha Nagar", NameHi: "गौतम बुद्ध नगर", Region: "West"},
	{Code: "UP031", Name: "Ghaziabad", NameHi: "गाजियाबाद", Region: "West"},
	{Code: "UP032", Name: "Ghazipur", NameHi: "गाजीपुर", Region: "East"},
	{Code: "UP033", Name: "Gonda", NameHi: "गोंडा", Region: "North"},
	{Code: "UP034", Name: "Gorakhpur", NameHi: "गोरखपुर", Region: "East"},
	{Code: "UP035", Name: "Hamirpur", NameHi: "हमीरपुर", Region: "South"},
	{Code: "UP036", Name: "Hapur", NameHi: "हापुड़", Region: "West"},
	{Code: "UP037", Name: "Hardoi", NameHi: "हरदोई", Region: "Central"},
	{Code: "UP038", Name: "Hathras", NameHi: "हाथरस", Region: "West"},
	{Code: "UP039", Name: "Jalaun", NameHi: "जालौन", Region: "South"},
	{Code: "UP040", Name: "Jaunpur", NameHi: "जौनपुर", Region: "East"},
	{Code: "UP041", Name: "Jhansi", NameHi: "झांसी", Region: "South"},
	{Code: "UP042", Name: "Kannauj", NameHi: "कन्नौज", Region: "Central"},
	{Code: "UP043", Name: "Kanpur Dehat", NameHi: "कानपुर देहात", Region: "Central"},
	{Code: "UP044", Name: "Kanpur Nagar", NameHi: "कानपुर नगर", Region: "Central"},
	{Code: "UP045", Name: "Kasganj", NameHi: "कासगंज", Region: "West"},
	{Code: "UP046", Name: "Kaushambi", NameHi: "कौशाम्बी", Region: "South"},
	{Code: "UP047", Name: "Kushinagar", NameHi: "कुशीनगर", Region: "East"},
	{Code: "UP048", Name: "Lakhimpur Kheri", NameHi: "लखीमपुर खीरी", Region: "North"},
	{Code: "UP049", Name: "Lalitpur", NameHi: "ललितपुर", Region: "South"},
	{Code: "UP050", Name: "Lucknow", NameHi: "लखनऊ", Region: "Central"},
	{Code: "UP051", Name: "Maharajganj", NameHi: "महाराजगंज", Region: "East"},
	{Code: "UP052", Name: "Mahoba", NameHi: "महोबा", Region: "South"},
	{Code: "UP053", Name: "Mainpuri", NameHi: "मैनपुरी", Region: "West"},
	{Code: "UP054", Name: "Mathura", NameHi: "मथुरा", Region: "West"},
	{Code: "UP055", Name: "Mau", NameHi: "मऊ", Region: "East"},
	{Code: "UP056", Name: "Meerut", NameHi: "मेरठ", Region: "West"},
	{Code: "UP057", Name: "Mirzapur", NameHi: "मिर्जापुर", Region: "South"},
	{Code: "UP058", Name: "Moradabad", NameHi: "मुरादाबाद", Region: "North"},
	{Code: "UP059", Name: "Muzaffarnagar", NameHi: "मुजफ्फरनगर", Region: "West"},
	{Code: "UP060", Name: "Pilibhit", NameHi: "पीलीभीत", Region: "North"},
	{Code: "UP061", Name: "Pratapgarh", NameHi: "प्रतापगढ़", Region: "South"},
	{Code: "UP062", Name: "Raebareli", NameHi: "रायबरेली", Region: "Central"},
	{Code: "UP063", Name: "Rampur", NameHi: "रामपुर", Region: "North"},
	{Code: "UP064", Name: "Saharanpur", NameHi: "सहारनपुर", Region: "West"},
	{Code: "UP065", Name: "Sambhal", NameHi: "संभल", Region: "West"},
	{Code: "UP066", Name: "Sant Kabir Nagar", NameHi: "संत कबीर नगर", Region: "East"},
	{Code: "UP067", Name: "Shahjahanpur", NameHi: "शाहजहांपुर", Region: "North"},
	{Code: "UP068", Name: "Shamli", NameHi: "शामली", Region: "West"},
	{Code: "UP069", Name: "Shravasti", NameHi: "श्रावस्ती", Region: "North"},
	{Code: "UP070", Name: "Siddharthnagar", NameHi: "सिद्धार्थनगर", Region: "East"},
	{Code: "UP071", Name: "Sitapur", NameHi: "सीतापुर", Region: "Central"},
	{Code: "UP072", Name: "Sonbhadra", NameHi: "सोनभद्र", Region: "South"},
	{Code: "UP073", Name: "Sultanpur", NameHi: "सुल्तानपुर", Region: "East"},
	{Code: "UP074", Name: "Unnao", NameHi: "उन्नाव", Region: "Central"},
	{Code: "UP075", Name: "Varanasi", NameHi: "वाराणसी", Region: "South"},}
