package lexicon

// Built-in reference tables. Lookups are case-insensitive unless noted.

var firstNames = []string{
	// German
	"alexander", "alexandra", "andrea", "andreas", "angelika", "anja", "anke", "anna", "anne", "annika",
	"antje", "barbara", "bastian", "beate", "benedikt", "benjamin", "bernd", "bettina", "birgit", "björn",
	"brigitte", "carina", "carsten", "christa", "christian", "christina", "christine", "christoph", "claudia", "cornelia",
	"daniel", "daniela", "david", "dennis", "diana", "dieter", "dirk", "dominik", "doris", "elena",
	"elisabeth", "emil", "emilia", "emma", "erik", "erika", "eva", "fabian", "felix", "florian",
	"frank", "franziska", "frederik", "friedrich", "gabriele", "georg", "gerhard", "gisela", "hannah", "hannes",
	"hans", "harald", "heike", "heinz", "helga", "helmut", "hendrik", "henning", "herbert", "holger",
	"ines", "ingrid", "isabel", "jan", "jana", "janina", "jannik", "jens", "jessica", "joachim",
	"johanna", "johannes", "jonas", "jörg", "josef", "julia", "julian", "jürgen", "jutta", "kai",
	"karin", "karl", "katharina", "kathrin", "katja", "kerstin", "klaus", "kristina", "lara", "lars",
	"laura", "lea", "lena", "leon", "lisa", "lukas", "lutz", "manfred", "manuel", "manuela",
	"marc", "marcel", "marco", "marcus", "maria", "marie", "marina", "mario", "marion", "markus",
	"martin", "martina", "mathias", "matthias", "max", "maximilian", "melanie", "michael", "michaela", "miriam",
	"monika", "moritz", "nadine", "natalie", "nicole", "niklas", "nils", "nina", "norbert", "olaf",
	"oliver", "patrick", "paul", "peter", "petra", "philipp", "rainer", "ralf", "regina", "reinhard",
	"renate", "robert", "roland", "rolf", "ruth", "sabine", "sandra", "sarah", "sascha", "sebastian",
	"silke", "simon", "simone", "sonja", "sophie", "stefan", "stefanie", "steffen", "stephan", "susanne",
	"sven", "swen", "tanja", "thomas", "thorsten", "tim", "timo", "tobias", "torsten", "ulrich",
	"ulrike", "ursula", "uta", "ute", "uwe", "vanessa", "verena", "volker", "walter", "werner",
	"wolfgang", "yvonne",
	// International
	"adam", "alice", "amanda", "amy", "andrew", "anthony", "brian", "charles", "chris", "daniel",
	"emily", "george", "james", "jane", "jason", "jennifer", "jessica", "john", "joseph", "kevin",
	"linda", "mark", "mary", "matthew", "olivia", "richard", "robert", "sarah", "steven", "susan",
	"william", "pierre", "jean", "luca", "marco", "giulia", "sofia", "lucas", "ana", "carlos",
	"jose", "juan", "lars", "erik", "sven", "anders", "piotr", "anna", "ivan", "olga",
	"mehmet", "ahmet", "ali", "fatma", "ayse", "mustafa",
}

var cityNames = []string{
	// Germany
	"Berlin", "Hamburg", "München", "Munich", "Köln", "Cologne", "Frankfurt am Main", "Frankfurt",
	"Frankfurt (Oder)", "Stuttgart", "Düsseldorf", "Dortmund", "Essen", "Leipzig", "Bremen", "Dresden",
	"Hannover", "Nürnberg", "Duisburg", "Bochum", "Wuppertal", "Bielefeld", "Bonn", "Münster",
	"Karlsruhe", "Mannheim", "Augsburg", "Wiesbaden", "Mönchengladbach", "Gelsenkirchen", "Braunschweig",
	"Kiel", "Chemnitz", "Aachen", "Halle", "Halle (Saale)", "Magdeburg", "Freiburg", "Freiburg im Breisgau",
	"Krefeld", "Lübeck", "Mainz", "Erfurt", "Oberhausen", "Rostock", "Kassel", "Hagen", "Potsdam",
	"Saarbrücken", "Hamm", "Ludwigshafen", "Oldenburg", "Osnabrück", "Leverkusen", "Heidelberg",
	"Darmstadt", "Solingen", "Regensburg", "Ingolstadt", "Würzburg", "Ulm", "Heilbronn", "Pforzheim",
	"Göttingen", "Wolfsburg", "Reutlingen", "Koblenz", "Bremerhaven", "Bergisch Gladbach", "Jena",
	"Erlangen", "Trier", "Siegen", "Cottbus", "Hildesheim", "Lüneburg", "Bamberg", "Bayreuth", "Passau",
	"Konstanz", "Tübingen", "Schwerin", "Weimar", "Gera", "Zwickau", "Flensburg", "Paderborn", "Fulda",
	"Gießen", "Kaiserslautern", "Landshut", "Kempten", "Celle", "Minden", "Gütersloh", "Neuss",
	"Ravensburg", "Rosenheim", "Friedrichshafen", "Altenburg", "Marburg", "Hanau", "Offenbach am Main",
	"Offenbach", "Wetzlar", "Bad Homburg", "Rüsselsheim", "Speyer", "Neustadt an der Weinstraße",
	"Pirmasens", "Zweibrücken", "Homburg", "Neunkirchen", "Völklingen", "Saarlouis", "Bad Kreuznach",
	"Neuwied", "Siegburg", "Troisdorf", "Sankt Augustin", "Bergheim", "Düren", "Eschweiler", "Viersen",
	"Moers", "Dinslaken", "Recklinghausen", "Marl", "Castrop-Rauxel", "Herne", "Hattingen", "Velbert",
	"Ratingen", "Mettmann", "Hilden", "Langenfeld", "Remscheid", "Iserlohn", "Lüdenscheid", "Arnsberg",
	"Soest", "Lippstadt", "Unna", "Lünen", "Ahlen", "Beckum", "Warendorf", "Rheine", "Ibbenbüren",
	"Detmold", "Lemgo", "Herford", "Höxter", "Nordhorn", "Lingen", "Meppen", "Papenburg", "Emden",
	"Aurich", "Wilhelmshaven", "Delmenhorst", "Cuxhaven", "Stade", "Buxtehude", "Verden", "Nienburg",
	"Hameln", "Peine", "Salzgitter", "Wolfenbüttel", "Goslar", "Gifhorn", "Uelzen", "Norderstedt",
	"Elmshorn", "Pinneberg", "Ahrensburg", "Neumünster", "Rendsburg", "Itzehoe", "Husum", "Schleswig",
	"Wismar", "Stralsund", "Greifswald", "Neubrandenburg", "Güstrow", "Brandenburg an der Havel",
	"Oranienburg", "Eberswalde", "Neuruppin", "Fürstenwalde", "Eisenhüttenstadt", "Dessau-Roßlau",
	"Dessau", "Lutherstadt Wittenberg", "Wittenberg", "Merseburg", "Naumburg", "Weißenfels",
	"Halberstadt", "Wernigerode", "Quedlinburg", "Stendal", "Salzwedel", "Nordhausen", "Mühlhausen",
	"Gotha", "Eisenach", "Suhl", "Ilmenau", "Arnstadt", "Saalfeld", "Plauen", "Görlitz", "Bautzen",
	"Hoyerswerda", "Riesa", "Meißen", "Pirna", "Glauchau", "Döbeln", "Torgau", "Delitzsch", "Grimma",
	"Esslingen am Neckar", "Esslingen", "Ludwigsburg", "Böblingen", "Sindelfingen", "Waiblingen",
	"Schorndorf", "Göppingen", "Aalen", "Schwäbisch Gmünd", "Schwäbisch Hall", "Heidenheim",
	"Crailsheim", "Backnang", "Leonberg", "Nürtingen", "Baden-Baden", "Rastatt", "Bruchsal",
	"Offenburg", "Villingen-Schwenningen", "Rottweil", "Tuttlingen", "Radolfzell", "Lörrach",
	"Emmendingen", "Sigmaringen", "Biberach", "Memmingen", "Kaufbeuren", "Füssen", "Neu-Ulm",
	"Günzburg", "Donauwörth", "Nördlingen", "Eichstätt", "Freising", "Erding", "Dachau",
	"Fürstenfeldbruck", "Starnberg", "Garmisch-Partenkirchen", "Traunstein", "Bad Reichenhall",
	"Altötting", "Burghausen", "Straubing", "Deggendorf", "Schwandorf", "Fürth", "Schwabach",
	"Ansbach", "Coburg", "Kulmbach", "Forchheim", "Aschaffenburg", "Schweinfurt", "Kitzingen",
	"Bad Kissingen",
	// Austria and Switzerland
	"Wien", "Vienna", "Graz", "Linz", "Salzburg", "Innsbruck", "Klagenfurt",
	"Zürich", "Zurich", "Bern", "Basel", "Genf", "Geneva", "Lausanne", "Luzern", "St. Gallen", "Winterthur",
	// Elsewhere
	"London", "Paris", "Amsterdam", "Rotterdam", "Brüssel", "Brussels", "Luxemburg", "Luxembourg",
	"Kopenhagen", "Copenhagen", "Stockholm", "Oslo", "Prag", "Prague", "Warschau", "Warsaw", "Madrid",
	"Barcelona", "Rom", "Rome", "Mailand", "Milan", "Dublin", "New York", "San Francisco", "Los Angeles",
	"Chicago", "Boston", "Seattle", "Austin", "Toronto",
}

// Strict legal forms are matched case-sensitively as whole tokens.
var legalForms = []string{
	"GmbH & Co. KGaA", "GmbH & Co. KG", "UG (haftungsbeschränkt)", "PartG mbB", "gGmbH", "GmbH", "mbH",
	"AG", "KGaA", "KG", "OHG", "GbR", "UG", "e.K.", "e.Kfm.", "e.V.", "eG", "PartG", "SE",
	"Ltd.", "Ltd", "LTD", "Limited", "LLC", "Inc.", "Inc", "Corp.", "Corporation", "LLP", "PLC",
	"S.A.", "S.à r.l.", "SARL", "S.r.l.", "B.V.", "N.V.", "A/S", "ApS", "Oy", "Sp. z o.o.", "Stiftung",
}

// Industry keywords may appear as the suffix of a compound word ("Zahnarztpraxis").
var industryKeywords = []string{
	"praxis", "kanzlei", "apotheke", "agentur", "klinik", "klinikum", "zentrum", "studio", "verlag",
	"werkstatt", "bäckerei", "metzgerei", "friseur", "salon", "hotel", "restaurant", "immobilien",
	"versicherung", "versicherungen", "steuerberatung", "beratung", "consulting", "solutions", "software",
	"systems", "technologies", "technology", "services", "media", "design", "group", "gruppe", "holding",
	"handel", "logistik", "bau", "architekten", "institut", "akademie", "partner", "werke",
}

// Role keywords name a job title.
var roleKeywords = []string{
	"Geschäftsführer", "Geschäftsführerin", "Geschäftsführung", "Inhaber", "Inhaberin", "Vorstand",
	"Vorstandsvorsitzender", "Vorstandsvorsitzende", "Prokurist", "Prokuristin", "Gesellschafter",
	"Abteilungsleiter", "Abteilungsleiterin", "Vertriebsleiter", "Vertriebsleiterin", "Projektleiter",
	"Projektleiterin", "Teamleiter", "Teamleiterin", "Leiter", "Leiterin", "CEO", "CTO", "CFO", "COO",
	"CMO", "CIO", "Founder", "Co-Founder", "Gründer", "Gründerin", "Managing Director", "Managing Partner",
	"Senior Partner", "Director", "Manager", "Rechtsanwalt", "Rechtsanwältin", "Fachanwalt", "Fachanwältin",
	"Notar", "Notarin", "Steuerberater", "Steuerberaterin", "Wirtschaftsprüfer", "Wirtschaftsprüferin",
	"Zahnarzt", "Zahnärztin", "Facharzt", "Fachärztin", "Arzt", "Ärztin", "Architekt", "Architektin",
	"Berater", "Beraterin", "Consultant", "Software Engineer", "Engineer", "Entwickler", "Entwicklerin",
	"Developer", "Designer", "Assistenz", "Assistant", "Referent", "Referentin", "Sachbearbeiter",
	"Sachbearbeiterin", "President", "Vice President", "Owner", "Head of",
}

// Representative labels introduce a person without naming a title.
var representativeKeywords = []string{
	"Vertreten durch", "Vertretungsberechtigter Geschäftsführer", "Vertretungsberechtigt",
	"Ansprechpartner", "Ansprechpartnerin", "Kontaktperson", "Contact person", "Inhaltlich verantwortlich",
	"Verantwortlich", "V.i.S.d.P.",
}

// German mobile prefixes (national format).
var mobilePrefixes = []string{
	"0150", "0151", "0152", "0155", "0156", "0157", "0159",
	"0160", "0162", "0163",
	"0170", "0171", "0172", "0173", "0174", "0175", "0176", "0177", "0178", "0179",
}

// German landline area codes (national format) and the city they serve.
var areaCodes = map[string]string{
	"030": "Berlin", "040": "Hamburg", "089": "München", "069": "Frankfurt am Main",
	"0201": "Essen", "0202": "Wuppertal", "0203": "Duisburg", "0208": "Oberhausen", "0209": "Gelsenkirchen",
	"0211": "Düsseldorf", "0212": "Solingen", "0214": "Leverkusen", "0221": "Köln", "0228": "Bonn",
	"0231": "Dortmund", "0234": "Bochum", "0241": "Aachen", "0251": "Münster", "0261": "Koblenz",
	"0271": "Siegen", "02151": "Krefeld", "02161": "Mönchengladbach", "02131": "Neuss", "02331": "Hagen",
	"02381": "Hamm", "02202": "Bergisch Gladbach", "02162": "Viersen", "02421": "Düren", "02403": "Eschweiler",
	"02241": "Siegburg", "02271": "Bergheim", "02631": "Neuwied", "02841": "Moers", "02064": "Dinslaken",
	"02361": "Recklinghausen", "02365": "Marl", "02305": "Castrop-Rauxel", "02323": "Herne",
	"02324": "Hattingen", "02103": "Hilden", "02173": "Langenfeld", "02051": "Velbert", "02102": "Ratingen",
	"02104": "Mettmann", "02191": "Remscheid", "02371": "Iserlohn", "02351": "Lüdenscheid",
	"02931": "Arnsberg", "02921": "Soest", "02941": "Lippstadt", "02303": "Unna", "02306": "Lünen",
	"02382": "Ahlen", "02521": "Beckum", "02581": "Warendorf",
	"0331": "Potsdam", "0335": "Frankfurt (Oder)", "0340": "Dessau-Roßlau", "0341": "Leipzig",
	"0345": "Halle (Saale)", "0351": "Dresden", "0355": "Cottbus", "0361": "Erfurt", "0365": "Gera",
	"0371": "Chemnitz", "0375": "Zwickau", "0381": "Rostock", "0385": "Schwerin", "0391": "Magdeburg",
	"0395": "Neubrandenburg", "03641": "Jena", "03643": "Weimar", "03834": "Greifswald",
	"03447": "Altenburg", "03621": "Gotha", "03681": "Suhl", "03841": "Wismar", "03831": "Stralsund",
	"03843": "Güstrow", "03381": "Brandenburg an der Havel", "03301": "Oranienburg", "03334": "Eberswalde",
	"03391": "Neuruppin", "03361": "Fürstenwalde", "03364": "Eisenhüttenstadt", "03491": "Lutherstadt Wittenberg",
	"03461": "Merseburg", "03445": "Naumburg", "03443": "Weißenfels", "03941": "Halberstadt",
	"03943": "Wernigerode", "03946": "Quedlinburg", "03931": "Stendal", "03901": "Salzwedel",
	"03631": "Nordhausen", "03601": "Mühlhausen", "03691": "Eisenach", "03677": "Ilmenau", "03628": "Arnstadt",
	"03671": "Saalfeld", "03741": "Plauen", "03581": "Görlitz", "03591": "Bautzen", "03571": "Hoyerswerda",
	"03525": "Riesa", "03521": "Meißen", "03501": "Pirna", "03763": "Glauchau", "03431": "Döbeln",
	"03421": "Torgau", "03437": "Grimma",
	"0421": "Bremen", "0431": "Kiel", "0441": "Oldenburg", "0451": "Lübeck", "0461": "Flensburg",
	"0471": "Bremerhaven", "04131": "Lüneburg", "04921": "Emden", "04941": "Aurich", "04961": "Papenburg",
	"04421": "Wilhelmshaven", "04221": "Delmenhorst", "04721": "Cuxhaven", "04141": "Stade",
	"04161": "Buxtehude", "04231": "Verden", "04121": "Elmshorn", "04101": "Pinneberg", "04102": "Ahrensburg",
	"04321": "Neumünster", "04331": "Rendsburg", "04821": "Itzehoe", "04841": "Husum", "04621": "Schleswig",
	"0511": "Hannover", "0521": "Bielefeld", "0531": "Braunschweig", "0541": "Osnabrück", "0551": "Göttingen",
	"0561": "Kassel", "0571": "Minden", "05121": "Hildesheim", "05141": "Celle", "05251": "Paderborn",
	"05241": "Gütersloh", "05361": "Wolfsburg", "05231": "Detmold", "05261": "Lemgo", "05221": "Herford",
	"05271": "Höxter", "05971": "Rheine", "05451": "Ibbenbüren", "05921": "Nordhorn", "0591": "Lingen",
	"05931": "Meppen", "05021": "Nienburg", "05151": "Hameln", "05171": "Peine", "05341": "Salzgitter",
	"05331": "Wolfenbüttel", "05321": "Goslar", "05371": "Gifhorn", "0581": "Uelzen",
	"0611": "Wiesbaden", "0621": "Mannheim", "0631": "Kaiserslautern", "0641": "Gießen", "0651": "Trier",
	"0661": "Fulda", "0681": "Saarbrücken", "06131": "Mainz", "06151": "Darmstadt", "06221": "Heidelberg",
	"06421": "Marburg", "06181": "Hanau", "06441": "Wetzlar", "06172": "Bad Homburg", "06142": "Rüsselsheim",
	"06232": "Speyer", "06321": "Neustadt an der Weinstraße", "06331": "Pirmasens", "06332": "Zweibrücken",
	"06841": "Homburg", "06821": "Neunkirchen", "06898": "Völklingen", "06831": "Saarlouis",
	"0671": "Bad Kreuznach", "06021": "Aschaffenburg",
	"0711": "Stuttgart", "0721": "Karlsruhe", "0731": "Ulm", "0751": "Ravensburg", "0761": "Freiburg im Breisgau",
	"07071": "Tübingen", "07121": "Reutlingen", "07131": "Heilbronn", "07231": "Pforzheim", "07531": "Konstanz",
	"07541": "Friedrichshafen", "07141": "Ludwigsburg", "07031": "Böblingen", "07151": "Waiblingen",
	"07181": "Schorndorf", "07161": "Göppingen", "07361": "Aalen", "07171": "Schwäbisch Gmünd",
	"0791": "Schwäbisch Hall", "07321": "Heidenheim", "07951": "Crailsheim", "07191": "Backnang",
	"07152": "Leonberg", "07022": "Nürtingen", "07221": "Baden-Baden", "07222": "Rastatt", "07251": "Bruchsal",
	"0781": "Offenburg", "07721": "Villingen-Schwenningen", "0741": "Rottweil", "07461": "Tuttlingen",
	"07732": "Radolfzell", "07621": "Lörrach", "07641": "Emmendingen", "07571": "Sigmaringen",
	"07351": "Biberach",
	"0821": "Augsburg", "0831": "Kempten", "0841": "Ingolstadt", "0851": "Passau", "0871": "Landshut",
	"08031": "Rosenheim", "08331": "Memmingen", "08341": "Kaufbeuren", "08362": "Füssen", "08221": "Günzburg",
	"0906": "Donauwörth", "09081": "Nördlingen", "08421": "Eichstätt", "08161": "Freising", "08122": "Erding",
	"08131": "Dachau", "08141": "Fürstenfeldbruck", "08151": "Starnberg", "08821": "Garmisch-Partenkirchen",
	"0861": "Traunstein", "08651": "Bad Reichenhall", "08671": "Altötting", "08677": "Burghausen",
	"0911": "Nürnberg", "0921": "Bayreuth", "0931": "Würzburg", "0941": "Regensburg", "0951": "Bamberg",
	"09131": "Erlangen", "09421": "Straubing", "0991": "Deggendorf", "09431": "Schwandorf",
	"09122": "Schwabach", "0981": "Ansbach", "09561": "Coburg", "09221": "Kulmbach", "09191": "Forchheim",
	"09721": "Schweinfurt", "09321": "Kitzingen", "0971": "Bad Kissingen",
}

// German postal-code prefixes and the city they belong to. Three digits
// separate a city from its surrounding region; longest prefix wins.
var postalPrefixes = map[string]string{
	"101": "Berlin", "102": "Berlin", "103": "Berlin", "104": "Berlin", "105": "Berlin", "106": "Berlin",
	"107": "Berlin", "108": "Berlin", "109": "Berlin", "120": "Berlin", "121": "Berlin", "122": "Berlin",
	"123": "Berlin", "124": "Berlin", "125": "Berlin", "126": "Berlin", "130": "Berlin", "131": "Berlin",
	"133": "Berlin", "134": "Berlin", "135": "Berlin", "136": "Berlin", "140": "Berlin", "141": "Berlin",
	"144": "Potsdam", "147": "Brandenburg an der Havel", "152": "Frankfurt (Oder)", "030": "Cottbus",
	"200": "Hamburg", "201": "Hamburg", "202": "Hamburg", "203": "Hamburg", "204": "Hamburg", "205": "Hamburg",
	"210": "Hamburg", "211": "Hamburg", "220": "Hamburg", "221": "Hamburg", "222": "Hamburg", "223": "Hamburg",
	"224": "Hamburg", "225": "Hamburg", "226": "Hamburg", "227": "Hamburg", "213": "Lüneburg", "216": "Stade",
	"235": "Lübeck", "241": "Kiel", "245": "Neumünster", "249": "Flensburg", "190": "Schwerin",
	"180": "Rostock", "181": "Rostock", "184": "Stralsund", "170": "Neubrandenburg", "174": "Greifswald",
	"281": "Bremen", "282": "Bremen", "283": "Bremen", "275": "Bremerhaven", "274": "Cuxhaven",
	"277": "Delmenhorst", "261": "Oldenburg", "263": "Wilhelmshaven", "267": "Emden",
	"301": "Hannover", "304": "Hannover", "305": "Hannover", "306": "Hannover", "311": "Hildesheim",
	"317": "Hameln", "292": "Celle", "381": "Braunschweig", "382": "Salzgitter", "384": "Wolfsburg",
	"386": "Goslar", "370": "Göttingen", "341": "Kassel", "350": "Marburg", "353": "Gießen", "360": "Fulda",
	"391": "Magdeburg", "061": "Halle (Saale)", "068": "Dessau-Roßlau",
	"041": "Leipzig", "042": "Leipzig", "043": "Leipzig", "046": "Altenburg",
	"010": "Dresden", "011": "Dresden", "012": "Dresden", "013": "Dresden", "026": "Bautzen", "028": "Görlitz",
	"091": "Chemnitz", "080": "Zwickau", "085": "Plauen", "075": "Gera", "077": "Jena",
	"990": "Erfurt", "991": "Erfurt", "994": "Weimar", "998": "Gotha", "985": "Suhl",
	"402": "Düsseldorf", "404": "Düsseldorf", "405": "Düsseldorf", "406": "Düsseldorf", "414": "Neuss",
	"410": "Mönchengladbach", "411": "Mönchengladbach", "412": "Mönchengladbach", "417": "Viersen",
	"420": "Wuppertal", "421": "Wuppertal", "422": "Wuppertal", "423": "Wuppertal",
	"426": "Solingen", "427": "Solingen", "441": "Dortmund", "442": "Dortmund", "443": "Dortmund",
	"447": "Bochum", "448": "Bochum", "451": "Essen", "452": "Essen", "458": "Gelsenkirchen",
	"459": "Gelsenkirchen", "460": "Oberhausen", "461": "Oberhausen", "470": "Duisburg", "471": "Duisburg",
	"472": "Duisburg", "477": "Krefeld", "478": "Krefeld", "481": "Münster", "490": "Osnabrück",
	"506": "Köln", "507": "Köln", "508": "Köln", "509": "Köln", "510": "Köln", "511": "Köln",
	"513": "Leverkusen", "514": "Bergisch Gladbach", "520": "Aachen", "521": "Aachen", "523": "Düren",
	"531": "Bonn", "532": "Bonn", "542": "Trier", "551": "Mainz", "560": "Koblenz", "570": "Siegen",
	"580": "Hagen", "581": "Hagen", "590": "Hamm", "594": "Soest", "320": "Herford", "324": "Minden",
	"327": "Detmold", "330": "Paderborn", "331": "Paderborn", "333": "Gütersloh", "336": "Bielefeld",
	"337": "Bielefeld",
	"603": "Frankfurt am Main", "604": "Frankfurt am Main", "605": "Frankfurt am Main", "630": "Offenbach am Main",
	"634": "Hanau", "637": "Aschaffenburg", "642": "Darmstadt", "651": "Wiesbaden", "652": "Wiesbaden",
	"661": "Saarbrücken", "664": "Homburg", "670": "Ludwigshafen", "673": "Speyer", "676": "Kaiserslautern",
	"681": "Mannheim", "682": "Mannheim", "683": "Mannheim", "691": "Heidelberg",
	"701": "Stuttgart", "703": "Stuttgart", "704": "Stuttgart", "705": "Stuttgart", "706": "Stuttgart",
	"716": "Ludwigsburg", "720": "Tübingen", "727": "Reutlingen", "730": "Göppingen", "734": "Aalen",
	"737": "Esslingen am Neckar", "740": "Heilbronn", "751": "Pforzheim", "761": "Karlsruhe", "762": "Karlsruhe",
	"776": "Offenburg", "780": "Villingen-Schwenningen", "784": "Konstanz", "790": "Freiburg im Breisgau",
	"791": "Freiburg im Breisgau", "795": "Lörrach",
	"803": "München", "804": "München", "805": "München", "806": "München", "807": "München", "808": "München",
	"809": "München", "812": "München", "813": "München", "814": "München", "816": "München", "817": "München",
	"818": "München", "819": "München", "830": "Rosenheim", "840": "Landshut", "850": "Ingolstadt",
	"861": "Augsburg", "874": "Kempten", "876": "Kaufbeuren", "877": "Memmingen", "880": "Friedrichshafen",
	"882": "Ravensburg", "890": "Ulm",
	"904": "Nürnberg", "907": "Fürth", "910": "Erlangen", "930": "Regensburg", "940": "Passau",
	"943": "Straubing", "944": "Deggendorf", "954": "Bayreuth", "960": "Bamberg", "964": "Coburg",
	"970": "Würzburg", "974": "Schweinfurt",
}

var genericWords = []string{
	"team", "info", "kontakt", "contact", "office", "büro", "service", "support", "sales", "vertrieb",
	"marketing", "presse", "press", "impressum", "imprint", "verwaltung", "zentrale", "empfang", "hotline",
	"newsletter", "datenschutz", "privacy", "anfahrt", "startseite", "home", "about", "karriere", "jobs",
	"news", "mail", "email", "e-mail", "telefon", "tel", "fax", "mobil", "web", "internet", "website",
	"adresse", "anschrift", "postfach", "öffnungszeiten", "geschäftszeiten", "bankverbindung", "herzliche",
	"grüße", "freundlichen", "regards", "best", "kind", "viele", "danke", "thanks", "sent", "gesendet",
	"iphone", "android", "disclaimer", "germany", "deutschland", "österreich", "schweiz", "austria",
	"switzerland", "kunden", "customer", "redaktion", "abteilung", "department", "headquarters", "zentrale",
}

var consumerDomains = []string{
	"gmail.com", "googlemail.com", "gmx.de", "gmx.net", "gmx.at", "gmx.ch", "web.de", "t-online.de",
	"yahoo.com", "yahoo.de", "hotmail.com", "hotmail.de", "outlook.com", "outlook.de", "live.com",
	"live.de", "icloud.com", "me.com", "mac.com", "aol.com", "freenet.de", "posteo.de", "mailbox.org",
	"protonmail.com", "proton.me", "arcor.de", "online.de", "vodafone.de", "msn.com",
}

// Country names (lower-case) to ISO 3166-1 alpha-2.
var countryNames = map[string]string{
	"deutschland": "DE", "germany": "DE", "österreich": "AT", "austria": "AT", "schweiz": "CH",
	"switzerland": "CH", "suisse": "CH", "svizzera": "CH", "niederlande": "NL", "netherlands": "NL",
	"nederland": "NL", "belgien": "BE", "belgium": "BE", "luxemburg": "LU", "luxembourg": "LU",
	"frankreich": "FR", "france": "FR", "italien": "IT", "italy": "IT", "italia": "IT", "spanien": "ES",
	"spain": "ES", "españa": "ES", "dänemark": "DK", "denmark": "DK", "polen": "PL", "poland": "PL",
	"usa": "US", "united states": "US", "vereinigte staaten": "US", "united kingdom": "GB",
	"großbritannien": "GB",
}

// Letter prefixes used before postal codes ("D-10115", "CH-8001").
var postalCountryPrefixes = map[string]string{
	"D": "DE", "DE": "DE", "A": "AT", "AT": "AT", "CH": "CH", "F": "FR", "I": "IT", "L": "LU",
	"NL": "NL", "B": "BE", "DK": "DK", "PL": "PL",
}

// US state abbreviations.
var usStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA", "KS",
	"KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY",
	"NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV",
	"WI", "WY", "DC",
}

// Name grammar tokens (lower-case).
var namePrefixes = []string{
	"prof.", "prof", "dr.", "dr", "dr.-ing.", "dr.-ing", "med.", "dent.", "rer.", "nat.", "jur.", "phil.",
	"dipl.-ing.", "dipl.-kfm.", "dipl.-kffr.", "dipl.-inf.", "dipl.-psych.", "dipl.-betriebsw.", "mag.",
	"ing.", "univ.-prof.", "priv.-doz.", "herr", "frau", "mr.", "mrs.", "ms.", "mr", "mrs", "ms", "sir",
}

var nameSuffixes = []string{
	"jr.", "sr.", "jr", "sr", "ii", "iii", "iv", "mba", "m.sc.", "b.sc.", "m.a.", "b.a.", "phd", "ph.d.",
	"ll.m.", "msc", "bsc", "llm", "m.eng.", "b.eng.",
}

var nameParticles = []string{
	"von", "van", "de", "der", "den", "zu", "vom", "zum", "di", "da", "del", "la", "le", "ten", "ter",
}
