package lexical

import (
	"regexp"
	"strings"
)

// countryNames lists localized spellings per ISO 3166-1 alpha-2 code. Entries are
// written as published (accents, Cyrillic) and indexed through countryKey, so any
// spelling that transliterates to the same key resolves the same way.
var countryNames = map[string][]string{
	// European Union
	"AT": {"Austria", "Autriche", "Ausztria", "Avstrija", "Austrija", "Аустрија", "Österreich"},
	"BE": {"Belgium", "Bélgica", "Belgique", "Belgija", "Белгија", "België", "Belgien"},
	"BG": {"Bulgaria", "Bulgarie", "Bulgária", "Bolgarija", "Bugarska", "Бугарска", "България"},
	"CY": {"Cyprus", "Chipre", "Chypre", "Ciprus", "Ciper", "Cipar", "Kipar", "Кипар", "Κύπρος"},
	"CZ": {
		"Czech Republic", "Czechia", "República Checa", "Chequia", "République tchèque", "Tchéquie",
		"Csehország", "Češka", "Češka Republika", "Чешка", "Česko", "Česká republika",
	},
	"DE": {"Germany", "Alemania", "Allemagne", "Németország", "Nemčija", "Njemačka", "Nemačka", "Немачка", "Deutschland"},
	"DK": {"Denmark", "Dinamarca", "Danemark", "Dánia", "Danska", "Данска", "Danmark"},
	"EE": {"Estonia", "Estonie", "Észtország", "Estonija", "Естонија", "Eesti"},
	"ES": {"Spain", "España", "Espagne", "Spanyolország", "Španija", "Španjolska", "Шпанија"},
	"FI": {"Finland", "Finlandia", "Finlande", "Finnország", "Finska", "Финска", "Suomi"},
	"FR": {"France", "Francia", "Franciaország", "Francija", "Francuska", "Француска"},
	"GR": {"Greece", "Grecia", "Grèce", "Görögország", "Grčija", "Grčka", "Грчка", "Ελλάδα", "Hellas"},
	"HR": {"Croatia", "Croacia", "Croatie", "Horvátország", "Hrvaška", "Hrvatska", "Хрватска"},
	"HU": {"Hungary", "Hungría", "Hongrie", "Magyarország", "Madžarska", "Mađarska", "Мађарска"},
	"IE": {"Ireland", "Irlanda", "Irlande", "Írország", "Irska", "Ирска", "Éire"},
	"IT": {"Italy", "Italia", "Italie", "Olaszország", "Italija", "Италија"},
	"LT": {"Lithuania", "Lituania", "Lituanie", "Litvánia", "Litva", "Litvanija", "Литванија", "Lietuva"},
	"LU": {"Luxembourg", "Luxemburgo", "Luxemburg", "Luksemburg", "Луксембург"},
	"LV": {"Latvia", "Letonia", "Lettonie", "Lettország", "Latvija", "Letonija", "Летонија"},
	"MT": {"Malta", "Malte", "Málta", "Малта"},
	"NL": {
		"Netherlands", "The Netherlands", "Holland", "Países Bajos", "Holanda", "Pays-Bas", "Hollandia",
		"Nizozemska", "Holandija", "Холандија", "Nederland",
	},
	"PL": {"Poland", "Polonia", "Pologne", "Lengyelország", "Poljska", "Пољска", "Polska"},
	"PT": {"Portugal", "Portugália", "Portugalska", "Portugalija", "Португалија"},
	"RO": {"Romania", "Rumania", "Rumanía", "Roumanie", "Románia", "Romunija", "Rumunjska", "Rumunija", "Румунија", "România"},
	"SE": {"Sweden", "Suecia", "Suède", "Svédország", "Švedska", "Шведска", "Sverige"},
	"SI": {"Slovenia", "Eslovenia", "Slovénie", "Szlovénia", "Slovenija", "Словенија"},
	"SK": {"Slovakia", "Eslovaquia", "Slovaquie", "Szlovákia", "Slovaška", "Slovačka", "Словачка", "Slovensko"},

	// Rest of Europe
	"AD": {"Andorra", "Andorre", "Andora", "Андора"},
	"AL": {"Albania", "Albanie", "Albánia", "Albanija", "Албанија", "Shqipëria"},
	"BA": {
		"Bosnia and Herzegovina", "Bosnia-Herzegovina", "Bosnia y Herzegovina", "Bosnie-Herzégovine",
		"Bosznia-Hercegovina", "Bosna in Hercegovina", "Bosna i Hercegovina", "Босна и Херцеговина",
	},
	"BY": {"Belarus", "Bielorrusia", "Biélorussie", "Fehéroroszország", "Belorusija", "Bjelorusija", "Белорусија"},
	"CH": {"Switzerland", "Suiza", "Suisse", "Svájc", "Švica", "Švicarska", "Švajcarska", "Швајцарска", "Schweiz"},
	"GB": {
		"United Kingdom", "UK", "Great Britain", "England", "Reino Unido", "Gran Bretaña", "Royaume-Uni",
		"Egyesült Királyság", "Nagy-Britannia", "Združeno kraljestvo", "Velika Britanija",
		"Ujedinjeno Kraljevstvo", "Велика Британија", "Уједињено Краљевство",
	},
	"IS": {"Iceland", "Islandia", "Islande", "Izland", "Islandija", "Island", "Исланд"},
	"LI": {"Liechtenstein", "Lihtenštajn", "Лихтенштајн"},
	"MC": {"Monaco", "Mónaco", "Monako", "Монако"},
	"MD": {"Moldova", "Moldavia", "Moldavie", "Moldávia", "Moldavija", "Молдавија"},
	"ME": {"Montenegro", "Monténégro", "Montenegró", "Črna gora", "Crna Gora", "Црна Гора"},
	"MK": {
		"North Macedonia", "Macedonia", "Macedonia del Norte", "Macédoine du Nord", "Észak-Macedónia",
		"Severna Makedonija", "Sjeverna Makedonija", "Makedonija", "Северна Македонија", "Македонија",
	},
	"NO": {"Norway", "Noruega", "Norvège", "Norvégia", "Norveška", "Норвешка", "Norge"},
	"RS": {"Serbia", "Serbie", "Szerbia", "Srbija", "Србија"},
	"RU": {"Russia", "Russian Federation", "Rusia", "Russie", "Oroszország", "Rusija", "Русија", "Россия"},
	"SM": {"San Marino", "Saint-Marin", "Сан Марино"},
	"TR": {"Turkey", "Türkiye", "Turquía", "Turquie", "Törökország", "Turčija", "Turska", "Турска"},
	"UA": {"Ukraine", "Ucrania", "Ukrajna", "Ukrajina", "Украјина", "Україна"},
	"VA": {"Vatican City", "Holy See", "Ciudad del Vaticano", "Vatican", "Vatikán", "Vatikan", "Ватикан"},
	"XK": {"Kosovo", "Koszovó", "Kosova", "Косово"},
	"GE": {"Georgia", "Géorgie", "Grúzia", "Gruzija", "Грузија"},
	"AM": {"Armenia", "Arménie", "Örményország", "Armenija", "Јерменија"},
	"AZ": {"Azerbaijan", "Azerbaiyán", "Azerbaïdjan", "Azerbajdzsán", "Azerbajdžan", "Азербејџан"},

	// Americas
	"AR": {"Argentina", "Argentine", "Argentína", "Аргентина"},
	"BO": {"Bolivia", "Bolivie", "Bolívia", "Боливија"},
	"BR": {"Brazil", "Brasil", "Brésil", "Brazília", "Brazilija", "Бразил"},
	"BZ": {"Belize", "Belice", "Белизе"},
	"CA": {"Canada", "Canadá", "Kanada", "Канада"},
	"CL": {"Chile", "Chili", "Čile", "Чиле"},
	"CO": {"Colombia", "Colombie", "Kolumbia", "Kolumbija", "Колумбија"},
	"CR": {"Costa Rica", "Kostarika", "Костарика"},
	"CU": {"Cuba", "Kuba", "Куба"},
	"DO": {"Dominican Republic", "República Dominicana", "République dominicaine", "Dominikai Köztársaság", "Dominikanska Republika"},
	"EC": {"Ecuador", "Équateur", "Ekvador", "Еквадор"},
	"GT": {"Guatemala", "Gvatemala", "Гватемала"},
	"HN": {"Honduras", "Hondúras", "Хондурас"},
	"HT": {"Haiti", "Haití", "Haïti", "Хаити"},
	"JM": {"Jamaica", "Jamaïque", "Jamajka", "Јамајка"},
	"MX": {"Mexico", "México", "Mexique", "Mexikó", "Mehika", "Meksiko", "Мексико"},
	"NI": {"Nicaragua", "Nikaragva", "Nikaragua", "Никарагва"},
	"PA": {"Panama", "Panamá", "Панама"},
	"PE": {"Peru", "Perú", "Pérou", "Перу"},
	"PR": {"Puerto Rico", "Porto Rico", "Portoriko", "Порторико"},
	"PY": {"Paraguay", "Paragvaj", "Парагвај"},
	"SV": {"El Salvador", "Salvador", "Салвадор"},
	"TT": {"Trinidad and Tobago", "Trinidad y Tobago", "Trinité-et-Tobago"},
	"US": {
		"United States", "United States of America", "USA", "U.S.A.", "U.S.", "Estados Unidos",
		"Estados Unidos de América", "États-Unis", "Egyesült Államok", "Združene države Amerike", "ZDA",
		"Sjedinjene Američke Države", "SAD", "Сједињене Америчке Државе",
	},
	"UY": {"Uruguay", "Urugvaj", "Уругвај"},
	"VE": {"Venezuela", "Venezuéla", "Venecuela", "Венецуела"},

	// Asia and Oceania
	"AE": {"United Arab Emirates", "Emiratos Árabes Unidos", "Émirats arabes unis", "Egyesült Arab Emírségek", "Ujedinjeni Arapski Emirati"},
	"AU": {"Australia", "Australie", "Ausztrália", "Avstralija", "Australija", "Аустралија"},
	"CN": {"China", "Chine", "Kína", "Kitajska", "Kina", "Кина", "中国"},
	"HK": {"Hong Kong", "Hongkong"},
	"ID": {"Indonesia", "Indonésie", "Indonézia", "Indonezija", "Индонезија"},
	"IL": {"Israel", "Israël", "Izrael", "Израел"},
	"IN": {"India", "Inde", "Indija", "Индија"},
	"IR": {"Iran", "Irán", "Иран"},
	"JP": {"Japan", "Japón", "Japon", "Japán", "Japonska", "Јапан"},
	"KR": {"South Korea", "Korea", "Republic of Korea", "Corea del Sur", "Corée du Sud", "Dél-Korea", "Južna Koreja", "Јужна Кореја"},
	"KZ": {"Kazakhstan", "Kazajistán", "Kazahsztán", "Kazahstan", "Казахстан"},
	"MY": {"Malaysia", "Malasia", "Malaisie", "Malajzia", "Malezija", "Малезија"},
	"NZ": {"New Zealand", "Nueva Zelanda", "Nouvelle-Zélande", "Új-Zéland", "Nova Zelandija", "Novi Zeland", "Нови Зеланд"},
	"PH": {"Philippines", "Filipinas", "Fülöp-szigetek", "Filipini", "Филипини"},
	"PK": {"Pakistan", "Pakistán", "Пакистан"},
	"SA": {"Saudi Arabia", "Arabia Saudita", "Arabie saoudite", "Szaúd-Arábia", "Savdska Arabija", "Saudijska Arabija", "Саудијска Арабија"},
	"SG": {"Singapore", "Singapur", "Singapour", "Szingapúr", "Сингапур"},
	"TH": {"Thailand", "Tailandia", "Thaïlande", "Thaiföld", "Tajska", "Tajland", "Тајланд"},
	"TW": {"Taiwan", "Taiwán", "Tajvan", "Тајван"},
	"VN": {"Vietnam", "Viet Nam", "Viêt Nam", "Vijetnam", "Вијетнам"},

	// Africa
	"DZ": {"Algeria", "Argelia", "Algérie", "Algéria", "Alžirija", "Alžir", "Алжир"},
	"EG": {"Egypt", "Egipto", "Égypte", "Egyiptom", "Egipt", "Египат"},
	"MA": {"Morocco", "Marruecos", "Maroc", "Marokkó", "Maroko", "Мароко"},
	"NG": {"Nigeria", "Nigéria", "Nigerija", "Нигерија"},
	"TN": {"Tunisia", "Túnez", "Tunisie", "Tunézia", "Tunizija", "Tunis", "Тунис"},
	"ZA": {"South Africa", "Sudáfrica", "Afrique du Sud", "Dél-afrikai Köztársaság", "Južna Afrika", "Јужна Африка"},
	"CG": {"Congo", "Republic of the Congo", "República del Congo"},
	"CD": {"Democratic Republic of the Congo", "DR Congo", "República Democrática del Congo", "République démocratique du Congo"},
}

var countryKeyPattern = regexp.MustCompile(`[^a-z0-9]+`)

// countryIndex maps normalized spellings and the codes themselves to codes.
var countryIndex = buildCountryIndex()

func buildCountryIndex() map[string]string {
	index := make(map[string]string, len(countryNames)*8)

	for code, names := range countryNames {
		index[strings.ToLower(code)] = code

		for _, name := range names {
			index[countryKey(name)] = code
		}
	}

	return index
}

func countryKey(name string) string {
	key := strings.ToLower(Transliterate(name))
	key = countryKeyPattern.ReplaceAllString(key, " ")

	return strings.TrimSpace(key)
}

// ResolveCountryName maps a localized country name to its ISO alpha-2 code.
// Unmatched input is returned unchanged; check the result with IsCountryCode.
func ResolveCountryName(name string) string {
	if code, ok := countryIndex[countryKey(name)]; ok {
		return code
	}

	return name
}

// IsCountryCode reports whether code is a known ISO alpha-2 code.
func IsCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}

	_, ok := countryNames[code]

	return ok
}

// CountryCode resolves name and reports whether it maps to a known code.
func CountryCode(name string) (string, bool) {
	code := ResolveCountryName(name)
	if IsCountryCode(code) {
		return code, true
	}

	return "", false
}
