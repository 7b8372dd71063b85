package honoka

// Regional key tables for the version 3 scheme. These are opaque input
// data recovered from the client binaries; the codec never derives them.

// KeyTableJP is the Japan release key table.
var KeyTableJP = [64]uint32{
	0x48230029, 0x678418BE, 0x3D6C4AE1, 0x72AE2CD6,
	0x5F906952, 0x6DF11649, 0x41BB5AF1, 0x01EB26E9,
	0x2EA60BB3, 0x153C12DB, 0x390C7E87, 0x00990F3E,
	0x305E0124, 0x491C440D, 0x4DB74D06, 0x54DE1547,
	0x2D1239B3, 0x4DC8074D, 0x66BB6443, 0x26A6428B,
	0x5D03701F, 0x767D7A5A, 0x12384509, 0x1E1F3B25,
	0x1AD46E5D, 0x6BFC63CB, 0x7FF57F96, 0x323B4E45,
	0x260D2213, 0x030A6B89, 0x0BDB301C, 0x073256AE,
	0x759A0120, 0x22EE2350, 0x58784B40, 0x5CFD6B36,
	0x1A493E12, 0x3BF65F32, 0x797D3A9E, 0x0DDC5F49,
	0x314F4CAD, 0x4DF25E14, 0x2E404944, 0x1CD01366,
	0x66C4366B, 0x7EB74230, 0x2C3B6032, 0x542215A1,
	0x08223EF6, 0x409D5991, 0x798B12E1, 0x73DA121F,
	0x26CA58B0, 0x09023699, 0x57727BB9, 0x7049139D,
	0x4A80692C, 0x16C5187E, 0x3CD56899, 0x408013E9,
	0x33EA5DB2, 0x48CC23C9, 0x60BF5753, 0x3CD65C67,
}

// KeyTableWW is the worldwide (English) release key table.
var KeyTableWW = [64]uint32{
	0xAA90A916, 0xD7F5C1A3, 0xE10AD2BF, 0xC3D3B9C5,
	0x83CB5955, 0xB77D6668, 0x1BB3FD4C, 0x2A9615A3,
	0x1A38745E, 0x19181F07, 0xB2AA3584, 0x259853C7,
	0x58BD2C45, 0x4F900893, 0xBAF43821, 0x2F7ED7FD,
	0x9B43E409, 0xF08D83FF, 0x29576003, 0x441418CD,
	0x450A1C04, 0x21DF6991, 0xD7DF966F, 0xD9464F22,
	0xF5E08A84, 0xC04F6A97, 0xB836FD1D, 0x44350C35,
	0x34701DA4, 0xAECDF62F, 0x723B91DF, 0xA42E3C00,
	0x58C237D8, 0xD3E8DE64, 0x8C4C84A5, 0x64499030,
	0x25E4AEC1, 0xCDF4B908, 0x1FBD52ED, 0xF4C5FB09,
	0x7C175166, 0x0886A95C, 0x9D36C4B2, 0x4400E964,
	0xCAD08E9F, 0x13F1E611, 0x6FBB1161, 0x337AD8CF,
	0x62763D12, 0x4882D35C, 0xA2C5873A, 0x58BE5C40,
	0xA59B2030, 0xECDE179B, 0x5F7E1DAA, 0xAB7EF801,
	0x53D24813, 0x55F48AFD, 0x82E9DE80, 0x9AEFA31D,
	0xB0A2A22F, 0xC5B0037E, 0x133CDAEB, 0xD280C2A3,
}

// KeyTableTW is the Taiwan release key table.
var KeyTableTW = [64]uint32{
	0xA925E518, 0x5AB9C4A4, 0x01950558, 0xACFF7182,
	0xE8183331, 0x9D1B6963, 0x0B8E9D15, 0x96DAD0BB,
	0x0F941E35, 0xC968E363, 0x2058A6AA, 0x7176BB02,
	0x4A4B2403, 0xED7A4E23, 0x3BB41EE6, 0x71634C06,
	0x7E0DD1DA, 0x343325C9, 0xE97B42F6, 0xF68F3C8F,
	0x1587DED8, 0x09935F9B, 0x3273309B, 0xEFBC3178,
	0x94C01BDD, 0x40CEA3BB, 0xD5785C8A, 0x0EC1B98E,
	0xC8D2D2B6, 0xEF7D77B1, 0x71814AAF, 0x2E838EAB,
	0x6B187F58, 0xA9BC924E, 0x6EAB5BA6, 0x738F6D2F,
	0xC1B49AA4, 0xAB6A5D53, 0xF958F728, 0x5A0CDB5B,
	0xB8133931, 0x923336C3, 0xB5A41DE0, 0x5F819B33,
	0x1F3A76AF, 0x56FB7A7C, 0x64AE7167, 0xF39C00F2,
	0x8F6F61C4, 0x6A79B9B9, 0x5B0AB1A6, 0xB7F07A0A,
	0x223035FF, 0x1AA8664C, 0x553EDB16, 0x379230C6,
	0xA2AEEB8A, 0xF647D0EA, 0xA91CB2F6, 0xBB70F817,
	0x94D63581, 0x49A7FAD6, 0x7BEDDD15, 0xC6913CED,
}

// KeyTableCN is the China release key table.
var KeyTableCN = [64]uint32{
	0x1B695658, 0x0A43A213, 0x0EAD0863, 0x1400056D,
	0xD470461D, 0xB6152300, 0xFBE054BC, 0x9AC9F112,
	0x23D3CAB6, 0xCD8FE028, 0x6905BD74, 0x01A3A612,
	0x6E96A579, 0x333D7AD1, 0xB6688BFF, 0x29160495,
	0xD7743BCF, 0x8EDE97BB, 0xCACB7E8D, 0x24D81C23,
	0xDBFC6947, 0xB07521C8, 0xF506E2AE, 0x3F48DF2F,
	0x52BEB172, 0x695935E8, 0x13E2A0A9, 0xE2EDF409,
	0x96CBA5C1, 0xDBB1E890, 0x4C2AF968, 0x17FD17C6,
	0x1B9AF5A8, 0x97C0BC25, 0x8413C879, 0xD9B13FE1,
	0x4066A948, 0x9662023A, 0x74A4FEEE, 0x1F24B4F6,
	0x637688C8, 0x7A7CCF70, 0x91042EEC, 0x57EDD02C,
	0x666DA2DD, 0x92839DE9, 0x43BAA9ED, 0x024A8E2C,
	0xD4EE7B72, 0x34C18B72, 0x13B275C4, 0xED506A6E,
	0xBC1C29B9, 0xFA66A220, 0xC2364DE3, 0x767E52B2,
	0xE2D32439, 0xE6F0CEF5, 0xD18C8687, 0x14BBA295,
	0xCD84D15B, 0xA0290F82, 0xD3E95AFC, 0x9C6A97B4,
}
