package aitable

import "sort"

// Embedded returns the built-in AI table, used whenever no externally
// supplied table has been loaded.
func Embedded() *Table {
	return embeddedTable
}

var embeddedTable = func() *Table {
	t, err := New(embeddedEntries())
	if err != nil {
		panic(err)
	}
	return t
}()

func mandN(min, max uint8, linters ...string) Component {
	return Component{CSet: CSetNumeric, Min: min, Max: max, Linters: linters}
}

func optN(min, max uint8, linters ...string) Component {
	return Component{CSet: CSetNumeric, Min: min, Max: max, Optional: true, Linters: linters}
}

func mandX(min, max uint8, linters ...string) Component {
	return Component{CSet: CSet82, Min: min, Max: max, Linters: linters}
}

func optX(min, max uint8, linters ...string) Component {
	return Component{CSet: CSet82, Min: min, Max: max, Optional: true, Linters: linters}
}

func mandY(min, max uint8, linters ...string) Component {
	return Component{CSet: CSet39, Min: min, Max: max, Linters: linters}
}

func mandZ(min, max uint8, linters ...string) Component {
	return Component{CSet: CSet64, Min: min, Max: max, Linters: linters}
}

const (
	doFNC1 = true
	noFNC1 = false
)

type tableBuilder struct {
	entries []Entry
}

func (b *tableBuilder) add(ai string, fnc1 bool, attrs, title string, parts ...Component) {
	b.entries = append(b.entries, Entry{
		AI:         ai,
		FNC1:       fnc1,
		Components: parts,
		Attrs:      attrs,
		Title:      title,
	})
}

// addDecade adds the ten AIs "<stem>0".."<stem>9" that differ only in their
// final digit.
func (b *tableBuilder) addDecade(stem string, fnc1 bool, attrs, title string, parts ...Component) {
	for n := byte('0'); n <= '9'; n++ {
		b.add(stem+string(n), fnc1, attrs, title, parts...)
	}
}

func embeddedEntries() []Entry {
	b := &tableBuilder{}

	b.add("00", noFNC1, "", "SSCC", mandN(18, 18, "csum", "key"))
	b.add("01", noFNC1, "ex=02,255,37", "GTIN", mandN(14, 14, "csum", "key"))
	b.add("02", noFNC1, "req=37 ex=01", "CONTENT", mandN(14, 14, "csum"))
	b.add("10", doFNC1, "req=01,02,8006,8026", "BATCH/LOT", mandX(1, 20))
	b.add("11", noFNC1, "req=01,02,8006,8026", "PROD DATE", mandN(6, 6, "yymmd0"))
	b.add("12", noFNC1, "req=8020", "DUE DATE", mandN(6, 6, "yymmd0"))
	b.add("13", noFNC1, "req=01,02,8006,8026", "PACK DATE", mandN(6, 6, "yymmd0"))
	b.add("15", noFNC1, "req=01,02,8006,8026", "BEST BEFORE or BEST BY", mandN(6, 6, "yymmd0"))
	b.add("16", noFNC1, "req=01,02,8006,8026", "SELL BY", mandN(6, 6, "yymmd0"))
	b.add("17", noFNC1, "req=01,02,8006,8026", "USE BY or EXPIRY", mandN(6, 6, "yymmd0"))
	b.add("20", noFNC1, "req=01,02,8006,8026", "VARIANT", mandN(2, 2))
	b.add("21", doFNC1, "req=01,8006 ex=235", "SERIAL", mandX(1, 20))
	b.add("22", doFNC1, "req=01", "CPV", mandX(1, 20))
	b.add("235", doFNC1, "req=01", "TPX", mandX(1, 28))
	b.add("240", doFNC1, "req=01,02,8006,8026", "ADDITIONAL ID", mandX(1, 30))
	b.add("241", doFNC1, "req=01,02,8006,8026", "CUST. PART No.", mandX(1, 30))
	b.add("242", doFNC1, "req=01,02,8006,8026", "MTO VARIANT", mandN(1, 6))
	b.add("243", doFNC1, "req=01", "PCN", mandX(1, 20))
	b.add("250", doFNC1, "req=01,8006 req=21", "SECONDARY SERIAL", mandX(1, 30))
	b.add("251", doFNC1, "req=01,8006", "REF. TO SOURCE", mandX(1, 30))
	b.add("253", doFNC1, "", "GDTI", mandN(13, 13, "csum", "key"), optX(1, 17))
	b.add("254", doFNC1, "req=414", "GLN EXTENSION COMPONENT", mandX(1, 20))
	b.add("255", doFNC1, "ex=01,02,37", "GCN", mandN(13, 13, "csum", "key"), optN(1, 12))
	b.add("30", doFNC1, "req=01,02 ex=37", "VAR. COUNT", mandN(1, 8))

	// Trade and logistic measures: the final digit is the implied decimal
	// point position.
	for _, stem := range []string{
		"310", "311", "312", "313", "314", "315", "316",
		"320", "321", "322", "323", "324", "325", "326", "327", "328", "329",
		"330", "331", "332", "333", "334", "335", "336", "337",
		"340", "341", "342", "343", "344", "345", "346", "347", "348", "349",
		"350", "351", "352", "353", "354", "355", "356", "357",
		"360", "361", "362", "363", "364", "365", "366", "367", "368", "369",
	} {
		b.addDecade(stem, noFNC1, "req=01,02,8006,8026", "MEASURE", mandN(6, 6))
	}

	b.add("37", doFNC1, "req=00 req=02,8026 ex=01,30", "COUNT", mandN(1, 8))

	b.addDecade("390", doFNC1, "req=255 ex=391n", "AMOUNT", mandN(1, 15))
	b.addDecade("391", doFNC1, "req=8020 ex=390n", "AMOUNT",
		mandN(3, 3, "iso4217"), mandN(1, 15))
	b.addDecade("392", doFNC1, "req=01 req=30,31nn,32nn,35nn,36nn ex=393n", "PRICE",
		mandN(1, 15))
	b.addDecade("393", doFNC1, "req=01 req=30,31nn,32nn,35nn,36nn ex=392n", "PRICE",
		mandN(3, 3, "iso4217"), mandN(1, 15))
	b.addDecade("394", doFNC1, "req=255 ex=394n,8111", "PRCNT OFF", mandN(4, 4))
	b.addDecade("395", doFNC1, "req=01 ex=392n,393n,8111", "PRICE/UoM", mandN(6, 6))

	b.add("400", doFNC1, "", "ORDER NUMBER", mandX(1, 30))
	b.add("401", doFNC1, "", "GINC", mandX(1, 30, "key"))
	b.add("402", doFNC1, "", "GSIN", mandN(17, 17, "csum", "key"))
	b.add("403", doFNC1, "req=410", "ROUTE", mandX(1, 30))
	b.add("410", noFNC1, "", "SHIP TO LOC", mandN(13, 13, "csum", "key"))
	b.add("411", noFNC1, "", "BILL TO", mandN(13, 13, "csum", "key"))
	b.add("412", noFNC1, "", "PURCHASE FROM", mandN(13, 13, "csum", "key"))
	b.add("413", noFNC1, "", "SHIP FOR LOC", mandN(13, 13, "csum", "key"))
	b.add("414", noFNC1, "", "LOC No.", mandN(13, 13, "csum", "key"))
	b.add("415", noFNC1, "", "PAY TO", mandN(13, 13, "csum", "key"))
	b.add("416", noFNC1, "", "PROD/SERV LOC", mandN(13, 13, "csum", "key"))
	b.add("417", noFNC1, "", "PARTY", mandN(13, 13, "csum", "key"))
	b.add("420", doFNC1, "ex=421", "SHIP TO POST", mandX(1, 20))
	b.add("421", doFNC1, "ex=420", "SHIP TO POST", mandN(3, 3, "iso3166"), mandX(1, 9))
	b.add("422", doFNC1, "req=01,02,8006,8026 ex=426", "ORIGIN", mandN(3, 3, "iso3166"))
	b.add("423", doFNC1, "ex=426", "COUNTRY - INITIAL PROCESS",
		mandN(3, 3, "iso3166"), optN(3, 12, "iso3166list"))
	b.add("424", doFNC1, "ex=425,426", "COUNTRY - PROCESS", mandN(3, 3, "iso3166"))
	b.add("425", doFNC1, "ex=424,426", "COUNTRY - DISASSEMBLY",
		mandN(3, 3, "iso3166"), optN(3, 12, "iso3166list"))
	b.add("426", doFNC1, "ex=422,423,424,425", "COUNTRY - FULL PROCESS", mandN(3, 3, "iso3166"))
	b.add("427", doFNC1, "req=422", "ORIGIN SUBDIVISION", mandX(1, 3))
	b.add("4300", doFNC1, "req=00", "SHIP TO COMP", mandX(1, 35, "pcenc"))
	b.add("4301", doFNC1, "req=00", "SHIP TO NAME", mandX(1, 35, "pcenc"))
	b.add("4302", doFNC1, "req=00", "SHIP TO ADD1", mandX(1, 70, "pcenc"))
	b.add("4303", doFNC1, "req=00", "SHIP TO ADD2", mandX(1, 70, "pcenc"))
	b.add("4304", doFNC1, "req=00", "SHIP TO SUB", mandX(1, 70, "pcenc"))
	b.add("4305", doFNC1, "req=00", "SHIP TO LOC", mandX(1, 70, "pcenc"))
	b.add("4306", doFNC1, "req=00", "SHIP TO REG", mandX(1, 70, "pcenc"))
	b.add("4307", doFNC1, "req=4302", "SHIP TO COUNTRY", mandX(2, 2, "iso3166alpha2"))
	b.add("4308", doFNC1, "req=00", "SHIP TO PHONE", mandX(1, 30))
	b.add("4309", doFNC1, "req=00", "SHIP TO GEO", mandN(20, 20, "latlong"))
	b.add("4310", doFNC1, "req=00", "RTN TO COMP", mandX(1, 35, "pcenc"))
	b.add("4311", doFNC1, "req=00", "RTN TO NAME", mandX(1, 35, "pcenc"))
	b.add("4312", doFNC1, "req=00", "RTN TO ADD1", mandX(1, 70, "pcenc"))
	b.add("4313", doFNC1, "req=00", "RTN TO ADD2", mandX(1, 70, "pcenc"))
	b.add("4314", doFNC1, "req=00", "RTN TO SUB", mandX(1, 70, "pcenc"))
	b.add("4315", doFNC1, "req=00", "RTN TO LOC", mandX(1, 70, "pcenc"))
	b.add("4316", doFNC1, "req=00", "RTN TO REG", mandX(1, 70, "pcenc"))
	b.add("4317", doFNC1, "req=4312", "RTN TO COUNTRY", mandX(2, 2, "iso3166alpha2"))
	b.add("4318", doFNC1, "req=00", "RTN TO POST", mandX(1, 20))
	b.add("4319", doFNC1, "req=00", "RTN TO PHONE", mandX(1, 30))
	b.add("4320", doFNC1, "req=00", "SRV DESCRIPTION", mandX(1, 35, "pcenc"))
	b.add("4321", doFNC1, "req=00", "DANGEROUS GOODS", mandN(1, 1, "yesno"))
	b.add("4322", doFNC1, "req=00", "AUTH LEAVE", mandN(1, 1, "yesno"))
	b.add("4323", doFNC1, "req=00", "SIG REQUIRED", mandN(1, 1, "yesno"))
	b.add("4324", doFNC1, "req=00", "NOT BEF DEL DT",
		mandN(6, 6, "yymmdd"), mandN(4, 4, "hhmm"))
	b.add("4325", doFNC1, "req=00", "NOT AFT DEL DT",
		mandN(6, 6, "yymmdd"), mandN(4, 4, "hhmm"))
	b.add("4326", doFNC1, "req=00", "REL DATE", mandN(6, 6, "yymmdd"))
	b.add("4330", doFNC1, "req=00", "MAX TEMP F", mandN(6, 6), optX(1, 1, "hyphen"))
	b.add("4331", doFNC1, "req=00", "MAX TEMP C", mandN(6, 6), optX(1, 1, "hyphen"))
	b.add("4332", doFNC1, "req=00", "MIN TEMP F", mandN(6, 6), optX(1, 1, "hyphen"))
	b.add("4333", doFNC1, "req=00", "MIN TEMP C", mandN(6, 6), optX(1, 1, "hyphen"))
	b.add("7001", doFNC1, "req=01,02,8006,8026", "NSN", mandN(13, 13))
	b.add("7002", doFNC1, "req=01,02,8006,8026", "MEAT CUT", mandX(1, 30))
	b.add("7003", doFNC1, "", "EXPIRY TIME", mandN(6, 6, "yymmdd"), mandN(4, 4, "hhmm"))
	b.add("7004", doFNC1, "req=01 req=10", "ACTIVE POTENCY", mandN(1, 4))
	b.add("7005", doFNC1, "req=01,02,8006,8026", "CATCH AREA", mandX(1, 12))
	b.add("7006", doFNC1, "req=01,02,8006,8026", "FIRST FREEZE DATE", mandN(6, 6, "yymmdd"))
	b.add("7007", doFNC1, "req=01,02,8006,8026", "HARVEST DATE",
		mandN(6, 6, "yymmdd"), optN(6, 6, "yymmdd"))
	b.add("7008", doFNC1, "req=01,02,8006,8026", "AQUATIC SPECIES", mandX(1, 3))
	b.add("7009", doFNC1, "req=01,02,8006,8026", "FISHING GEAR TYPE", mandX(1, 10))
	b.add("7010", doFNC1, "req=01,02,8006,8026", "PROD METHOD", mandX(1, 2))
	b.add("7011", doFNC1, "req=01,02,8006,8026", "TEST BY DATE",
		mandN(6, 6, "yymmdd"), optN(4, 4, "hhmm"))
	b.add("7020", doFNC1, "req=01,8006", "REFURB LOT", mandX(1, 20))
	b.add("7021", doFNC1, "", "FUNC STAT", mandX(1, 20))
	b.add("7022", doFNC1, "req=7021", "REV STAT", mandX(1, 20))
	b.add("7023", doFNC1, "", "GIAI - ASSEMBLY", mandX(1, 30, "key"))
	for n := byte('0'); n <= '9'; n++ {
		b.add("703"+string(n), doFNC1, "req=01,02", "PROCESSOR # "+string(n),
			mandN(3, 3, "iso3166999"), mandX(1, 27))
	}
	b.add("7040", doFNC1, "", "UIC+EXT",
		mandN(1, 1), mandX(1, 1), mandX(1, 1), mandX(1, 1, "importeridx"))
	for n := byte('0'); n <= '7'; n++ {
		b.add("71"+string(n), doFNC1, "req=01", "NHRN "+string(n), mandN(1, 20))
	}
	b.addDecade("723", doFNC1, "req=01", "CERT #", mandX(2, 2), mandX(1, 28))
	b.add("8001", doFNC1, "req=01", "DIMENSIONS",
		mandN(4, 4, "nonzero"), mandN(5, 5, "nonzero"), mandN(3, 3, "nonzero"),
		mandN(1, 1, "winding"), mandN(1, 1))
	b.add("8002", doFNC1, "", "CMT No.", mandX(1, 20))
	b.add("8003", doFNC1, "", "GRAI",
		mandN(1, 1, "zero"), mandN(13, 13, "csum", "key"), optX(1, 16))
	b.add("8004", doFNC1, "", "GIAI", mandX(1, 30, "key"))
	b.add("8005", doFNC1, "req=01,02", "PRICE PER UNIT", mandN(6, 6))
	b.add("8006", doFNC1, "ex=01,8026", "ITIP",
		mandN(14, 14, "csum"), mandN(4, 4, "pieceoftotal"))
	b.add("8007", doFNC1, "", "IBAN", mandX(1, 34, "iban"))
	b.add("8008", doFNC1, "req=01,02", "PROD TIME",
		mandN(8, 8, "yymmddhh"), optN(2, 4, "mmoptss"))
	b.add("8009", doFNC1, "req=01,02", "OPTSEN", mandX(1, 50))
	b.add("8010", doFNC1, "req=8011", "CPID", mandY(1, 30))
	b.add("8011", doFNC1, "req=8010", "CPID SERIAL", mandN(1, 12, "nozeroprefix"))
	b.add("8012", doFNC1, "req=01,8006", "VERSION", mandX(1, 20))
	b.add("8013", doFNC1, "", "GMN", mandX(1, 25, "csumalpha"))
	b.add("8017", doFNC1, "ex=8018", "GSRN - PROVIDER", mandN(18, 18, "csum", "key"))
	b.add("8018", doFNC1, "ex=8017", "GSRN - RECIPIENT", mandN(18, 18, "csum", "key"))
	b.add("8019", doFNC1, "req=8017,8018", "SRIN", mandN(1, 10))
	b.add("8020", doFNC1, "req=415", "REF No.", mandN(1, 25))
	b.add("8026", doFNC1, "req=37 ex=02,8006", "ITIP CONTENT",
		mandN(14, 14, "csum"), mandN(4, 4, "pieceoftotal"))
	b.add("8030", doFNC1, "", "DIGSIG", mandZ(1, 90))
	b.add("8110", doFNC1, "", "COUPON - NA", mandX(1, 70))
	b.add("8111", doFNC1, "req=255", "POINTS", mandN(4, 4))
	b.add("8112", doFNC1, "", "COUPON - PAPERLESS", mandX(1, 70))
	b.add("8200", doFNC1, "req=01", "PRODUCT URL", mandX(1, 70))
	b.add("90", doFNC1, "", "INTERNAL", mandX(1, 30))
	for n := byte('1'); n <= '9'; n++ {
		b.add("9"+string(n), doFNC1, "", "INTERNAL", mandX(1, 90))
	}

	sort.Slice(b.entries, func(i, j int) bool { return b.entries[i].AI < b.entries[j].AI })
	return b.entries
}
