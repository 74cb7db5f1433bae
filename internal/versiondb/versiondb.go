// Package versiondb holds the per-version data-capacity and Reed-Solomon
// block parameters for QR symbol versions 1 through 40.
package versiondb

// MinVersion and MaxVersion bound the supported QR symbol versions.
const (
	MinVersion = 1
	MaxVersion = 40
)

// RSParams describes how one error-correction level splits a version's data
// into Reed-Solomon blocks: NS blocks of BS total bytes (DW of them data).
type RSParams struct {
	BS int
	DW int
	NS int
}

// VersionInfo holds the data capacity, alignment-pattern centre coordinates,
// and the four RSParams for a single QR version.
type VersionInfo struct {
	DataBytes int
	Apat      [7]int
	ECC       [4]RSParams
}

// Table is indexed by version number; index 0 is unused.
var Table = [MaxVersion + 1]VersionInfo{
	{},
	{DataBytes: 26, Apat: [7]int{0, 0, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{26, 16, 1}, {26, 19, 1}, {26, 9, 1}, {26, 13, 1},
	}},
	{DataBytes: 44, Apat: [7]int{6, 18, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{44, 28, 1}, {44, 34, 1}, {44, 16, 1}, {44, 22, 1},
	}},
	{DataBytes: 70, Apat: [7]int{6, 22, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{70, 44, 1}, {70, 55, 1}, {35, 13, 2}, {35, 17, 2},
	}},
	{DataBytes: 100, Apat: [7]int{6, 26, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{50, 32, 2}, {100, 80, 1}, {25, 9, 4}, {50, 24, 2},
	}},
	{DataBytes: 134, Apat: [7]int{6, 30, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{67, 43, 2}, {134, 108, 1}, {33, 11, 2}, {33, 15, 2},
	}},
	{DataBytes: 172, Apat: [7]int{6, 34, 0, 0, 0, 0, 0}, ECC: [4]RSParams{
		{43, 27, 4}, {86, 68, 2}, {43, 15, 4}, {43, 19, 4},
	}},
	{DataBytes: 196, Apat: [7]int{6, 22, 38, 0, 0, 0, 0}, ECC: [4]RSParams{
		{49, 31, 4}, {98, 78, 2}, {39, 13, 4}, {32, 14, 2},
	}},
	{DataBytes: 242, Apat: [7]int{6, 24, 42, 0, 0, 0, 0}, ECC: [4]RSParams{
		{60, 38, 2}, {121, 97, 2}, {40, 14, 4}, {40, 18, 4},
	}},
	{DataBytes: 292, Apat: [7]int{6, 26, 46, 0, 0, 0, 0}, ECC: [4]RSParams{
		{58, 36, 3}, {146, 116, 2}, {36, 12, 4}, {36, 16, 4},
	}},
	{DataBytes: 346, Apat: [7]int{6, 28, 50, 0, 0, 0, 0}, ECC: [4]RSParams{
		{69, 43, 4}, {86, 68, 2}, {43, 15, 6}, {43, 19, 6},
	}},
	{DataBytes: 404, Apat: [7]int{6, 30, 54, 0, 0, 0, 0}, ECC: [4]RSParams{
		{80, 50, 1}, {101, 81, 4}, {36, 12, 3}, {50, 22, 4},
	}},
	{DataBytes: 466, Apat: [7]int{6, 32, 58, 0, 0, 0, 0}, ECC: [4]RSParams{
		{58, 36, 6}, {116, 92, 2}, {42, 14, 7}, {46, 20, 4},
	}},
	{DataBytes: 532, Apat: [7]int{6, 34, 62, 0, 0, 0, 0}, ECC: [4]RSParams{
		{59, 37, 8}, {133, 107, 4}, {33, 11, 12}, {44, 20, 8},
	}},
	{DataBytes: 581, Apat: [7]int{6, 26, 46, 66, 0, 0, 0}, ECC: [4]RSParams{
		{64, 40, 4}, {145, 115, 3}, {36, 12, 11}, {36, 16, 11},
	}},
	{DataBytes: 655, Apat: [7]int{6, 26, 48, 70, 0, 0, 0}, ECC: [4]RSParams{
		{65, 41, 5}, {109, 87, 5}, {36, 12, 11}, {54, 24, 5},
	}},
	{DataBytes: 733, Apat: [7]int{6, 26, 50, 74, 0, 0, 0}, ECC: [4]RSParams{
		{73, 45, 7}, {122, 98, 5}, {45, 15, 3}, {43, 19, 15},
	}},
	{DataBytes: 815, Apat: [7]int{6, 30, 54, 78, 0, 0, 0}, ECC: [4]RSParams{
		{74, 46, 10}, {135, 107, 1}, {42, 14, 2}, {50, 22, 1},
	}},
	{DataBytes: 901, Apat: [7]int{6, 30, 56, 82, 0, 0, 0}, ECC: [4]RSParams{
		{69, 43, 9}, {150, 120, 5}, {42, 14, 2}, {50, 22, 17},
	}},
	{DataBytes: 991, Apat: [7]int{6, 30, 58, 86, 0, 0, 0}, ECC: [4]RSParams{
		{70, 44, 3}, {141, 113, 3}, {39, 13, 9}, {47, 21, 17},
	}},
	{DataBytes: 1085, Apat: [7]int{6, 34, 62, 90, 0, 0, 0}, ECC: [4]RSParams{
		{67, 41, 3}, {135, 107, 3}, {43, 15, 15}, {54, 24, 15},
	}},
	{DataBytes: 1156, Apat: [7]int{6, 28, 50, 72, 92, 0, 0}, ECC: [4]RSParams{
		{68, 42, 17}, {144, 116, 4}, {46, 16, 19}, {50, 22, 17},
	}},
	{DataBytes: 1258, Apat: [7]int{6, 26, 50, 74, 98, 0, 0}, ECC: [4]RSParams{
		{74, 46, 17}, {139, 111, 2}, {37, 13, 34}, {54, 24, 7},
	}},
	{DataBytes: 1364, Apat: [7]int{6, 30, 54, 78, 102, 0, 0}, ECC: [4]RSParams{
		{75, 47, 4}, {151, 121, 4}, {45, 15, 16}, {54, 24, 11},
	}},
	{DataBytes: 1474, Apat: [7]int{6, 28, 54, 80, 106, 0, 0}, ECC: [4]RSParams{
		{73, 45, 6}, {147, 117, 6}, {46, 16, 30}, {54, 24, 11},
	}},
	{DataBytes: 1588, Apat: [7]int{6, 32, 58, 84, 110, 0, 0}, ECC: [4]RSParams{
		{75, 47, 8}, {132, 106, 8}, {45, 15, 22}, {54, 24, 7},
	}},
	{DataBytes: 1706, Apat: [7]int{6, 30, 58, 86, 114, 0, 0}, ECC: [4]RSParams{
		{74, 46, 19}, {142, 114, 10}, {46, 16, 33}, {50, 22, 28},
	}},
	{DataBytes: 1828, Apat: [7]int{6, 34, 62, 90, 118, 0, 0}, ECC: [4]RSParams{
		{73, 45, 22}, {152, 122, 8}, {45, 15, 12}, {53, 23, 8},
	}},
	{DataBytes: 1921, Apat: [7]int{6, 26, 50, 74, 98, 122, 0}, ECC: [4]RSParams{
		{73, 45, 3}, {147, 117, 3}, {45, 15, 11}, {54, 24, 4},
	}},
	{DataBytes: 2051, Apat: [7]int{6, 30, 54, 78, 102, 126, 0}, ECC: [4]RSParams{
		{73, 45, 21}, {146, 116, 7}, {45, 15, 19}, {53, 23, 1},
	}},
	{DataBytes: 2185, Apat: [7]int{6, 26, 52, 78, 104, 130, 0}, ECC: [4]RSParams{
		{75, 47, 19}, {145, 115, 5}, {45, 15, 23}, {54, 24, 15},
	}},
	{DataBytes: 2323, Apat: [7]int{6, 30, 56, 82, 108, 134, 0}, ECC: [4]RSParams{
		{74, 46, 2}, {145, 115, 13}, {45, 15, 23}, {54, 24, 42},
	}},
	{DataBytes: 2465, Apat: [7]int{6, 34, 60, 86, 112, 138, 0}, ECC: [4]RSParams{
		{74, 46, 10}, {145, 115, 17}, {45, 15, 19}, {54, 24, 10},
	}},
	{DataBytes: 2611, Apat: [7]int{6, 30, 58, 86, 114, 142, 0}, ECC: [4]RSParams{
		{74, 46, 14}, {145, 115, 17}, {45, 15, 11}, {54, 24, 29},
	}},
	{DataBytes: 2761, Apat: [7]int{6, 34, 62, 90, 118, 146, 0}, ECC: [4]RSParams{
		{74, 46, 14}, {145, 115, 13}, {46, 16, 59}, {54, 24, 44},
	}},
	{DataBytes: 2876, Apat: [7]int{6, 30, 54, 78, 102, 126, 150}, ECC: [4]RSParams{
		{75, 47, 12}, {151, 121, 12}, {45, 15, 22}, {54, 24, 39},
	}},
	{DataBytes: 3034, Apat: [7]int{6, 24, 50, 76, 102, 128, 154}, ECC: [4]RSParams{
		{75, 47, 6}, {151, 121, 6}, {45, 15, 2}, {54, 24, 46},
	}},
	{DataBytes: 3196, Apat: [7]int{6, 28, 54, 80, 106, 132, 158}, ECC: [4]RSParams{
		{74, 46, 29}, {152, 122, 17}, {45, 15, 24}, {54, 24, 49},
	}},
	{DataBytes: 3362, Apat: [7]int{6, 32, 58, 84, 110, 136, 162}, ECC: [4]RSParams{
		{74, 46, 13}, {152, 122, 4}, {45, 15, 42}, {54, 24, 48},
	}},
	{DataBytes: 3532, Apat: [7]int{6, 26, 54, 82, 110, 138, 166}, ECC: [4]RSParams{
		{75, 47, 40}, {147, 117, 20}, {45, 15, 10}, {54, 24, 43},
	}},
	{DataBytes: 3706, Apat: [7]int{6, 30, 58, 86, 114, 142, 170}, ECC: [4]RSParams{
		{75, 47, 18}, {148, 118, 19}, {45, 15, 20}, {54, 24, 34},
	}},
}

// ECCLevel is the QR format-information error-correction level. Note the
// non-alphabetical ordering, inherited from the format bits themselves:
// M=0, L=1, H=2, Q=3.
type ECCLevel int

const (
	ECCLevelM ECCLevel = 0
	ECCLevelL ECCLevel = 1
	ECCLevelH ECCLevel = 2
	ECCLevelQ ECCLevel = 3
)

// For looks up the RSParams for a given version and ECC level.
func For(version int, level ECCLevel) RSParams {
	return Table[version].ECC[level]
}
