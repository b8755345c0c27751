package lunar

// Calendar days (UTC) of every full and new moon from 2020 through 2035, as
// days since 1970-01-01. Computed from Meeus, Astronomical Algorithms, ch. 49,
// with the periodic and planetary corrections; each instant was reduced from
// TT to UTC before taking its calendar day. Both tables are sorted.

var fullMoonDays = []int32{
	// 2020
	18271, 18301, 18330, 18360, 18389, 18418, // 01-10 02-09 03-09 04-08 05-07 06-05
	18448, 18477, 18507, 18536, 18566, 18596, // 07-05 08-03 09-02 10-01 10-31 11-30
	18626,                                    // 12-30
	// 2021
	18655, 18685, 18714, 18744, 18773, 18802, // 01-28 02-27 03-28 04-27 05-26 06-24
	18832, 18861, 18890, 18920, 18950, 18980, // 07-24 08-22 09-20 10-20 11-19 12-19
	// 2022
	19009, 19039, 19069, 19098, 19128, 19157, // 01-17 02-16 03-18 04-16 05-16 06-14
	19186, 19216, 19245, 19274, 19304, 19334, // 07-13 08-12 09-10 10-09 11-08 12-08
	// 2023
	19363, 19393, 19423, 19453, 19482, 19512, // 01-06 02-05 03-07 04-06 05-05 06-04
	19541, 19570, 19600, 19629, 19658, 19688, // 07-03 08-01 08-31 09-29 10-28 11-27
	19718,                                    // 12-27
	// 2024
	19747, 19777, 19807, 19836, 19866, 19896, // 01-25 02-24 03-25 04-23 05-23 06-22
	19925, 19954, 19984, 20013, 20042, 20072, // 07-21 08-19 09-18 10-17 11-15 12-15
	// 2025
	20101, 20131, 20161, 20191, 20220, 20250, // 01-13 02-12 03-14 04-13 05-12 06-11
	20279, 20309, 20338, 20368, 20397, 20426, // 07-10 08-09 09-07 10-07 11-05 12-04
	// 2026
	20456, 20485, 20515, 20545, 20574, 20604, // 01-03 02-01 03-03 04-02 05-01 05-31
	20633, 20663, 20693, 20722, 20752, 20781, // 06-29 07-29 08-28 09-26 10-26 11-24
	20811,                                    // 12-24
	// 2027
	20840, 20869, 20899, 20928, 20958, 20988, // 01-22 02-20 03-22 04-20 05-20 06-19
	21017, 21047, 21076, 21106, 21136, 21165, // 07-18 08-17 09-15 10-15 11-14 12-13
	// 2028
	21195, 21224, 21254, 21283, 21312, 21342, // 01-12 02-10 03-11 04-09 05-08 06-07
	21371, 21401, 21430, 21460, 21490, 21520, // 07-06 08-05 09-03 10-03 11-02 12-02
	21549,                                    // 12-31
	// 2029
	21579, 21608, 21638, 21667, 21696, 21726, // 01-30 02-28 03-30 04-28 05-27 06-26
	21755, 21785, 21814, 21844, 21874, 21903, // 07-25 08-24 09-22 10-22 11-21 12-20
	// 2030
	21933, 21963, 21992, 22022, 22051, 22080, // 01-19 02-18 03-19 04-18 05-17 06-15
	22110, 22139, 22168, 22198, 22228, 22257, // 07-15 08-13 09-11 10-11 11-10 12-09
	// 2031
	22287, 22317, 22347, 22376, 22406, 22435, // 01-08 02-07 03-09 04-07 05-07 06-05
	22464, 22494, 22523, 22552, 22582, 22611, // 07-04 08-03 09-01 09-30 10-30 11-28
	22641,                                    // 12-28
	// 2032
	22671, 22701, 22731, 22760, 22790, 22819, // 01-27 02-26 03-27 04-25 05-25 06-23
	22848, 22878, 22907, 22936, 22966, 22995, // 07-22 08-21 09-19 10-18 11-17 12-16
	// 2033
	23025, 23055, 23085, 23114, 23144, 23173, // 01-15 02-14 03-16 04-14 05-14 06-12
	23203, 23232, 23262, 23291, 23320, 23350, // 07-12 08-10 09-09 10-08 11-06 12-06
	// 2034
	23379, 23409, 23439, 23468, 23498, 23528, // 01-04 02-03 03-05 04-03 05-03 06-02
	23557, 23587, 23616, 23646, 23675, 23704, // 07-01 07-31 08-29 09-28 10-27 11-25
	23734,                                    // 12-25
	// 2035
	23763, 23793, 23822, 23852, 23882, 23911, // 01-23 02-22 03-23 04-22 05-22 06-20
	23941, 23971, 24000, 24030, 24059, 24089, // 07-20 08-19 09-17 10-17 11-15 12-15
}

var newMoonDays = []int32{
	// 2020
	18285, 18315, 18345, 18375, 18404, 18434, // 01-24 02-23 03-24 04-23 05-22 06-21
	18463, 18493, 18522, 18551, 18581, 18610, // 07-20 08-19 09-17 10-16 11-15 12-14
	// 2021
	18640, 18669, 18699, 18729, 18758, 18788, // 01-13 02-11 03-13 04-12 05-11 06-10
	18818, 18847, 18877, 18906, 18935, 18965, // 07-10 08-08 09-07 10-06 11-04 12-04
	// 2022
	18994, 19024, 19053, 19083, 19112, 19142, // 01-02 02-01 03-02 04-01 04-30 05-30
	19172, 19201, 19231, 19260, 19290, 19319, // 06-29 07-28 08-27 09-25 10-25 11-23
	19349,                                    // 12-23
	// 2023
	19378, 19408, 19437, 19467, 19496, 19526, // 01-21 02-20 03-21 04-20 05-19 06-18
	19555, 19585, 19615, 19644, 19674, 19703, // 07-17 08-16 09-15 10-14 11-13 12-12
	// 2024
	19733, 19762, 19792, 19821, 19851, 19880, // 01-11 02-09 03-10 04-08 05-08 06-06
	19909, 19939, 19969, 19998, 20028, 20058, // 07-05 08-04 09-03 10-02 11-01 12-01
	20087,                                    // 12-30
	// 2025
	20117, 20147, 20176, 20205, 20235, 20264, // 01-29 02-28 03-29 04-27 05-27 06-25
	20293, 20323, 20352, 20382, 20412, 20442, // 07-24 08-23 09-21 10-21 11-20 12-20
	// 2026
	20471, 20501, 20531, 20560, 20589, 20619, // 01-18 02-17 03-19 04-17 05-16 06-15
	20648, 20677, 20707, 20736, 20766, 20796, // 07-14 08-12 09-11 10-10 11-09 12-09
	// 2027
	20825, 20855, 20885, 20914, 20944, 20973, // 01-07 02-06 03-08 04-06 05-06 06-04
	21003, 21032, 21061, 21091, 21120, 21150, // 07-04 08-02 08-31 09-30 10-29 11-28
	21179,                                    // 12-27
	// 2028
	21209, 21239, 21269, 21298, 21328, 21357, // 01-26 02-25 03-26 04-24 05-24 06-22
	21387, 21416, 21445, 21475, 21504, 21534, // 07-22 08-20 09-18 10-18 11-16 12-16
	// 2029
	21563, 21593, 21623, 21652, 21682, 21712, // 01-14 02-13 03-15 04-13 05-13 06-12
	21741, 21771, 21800, 21829, 21859, 21888, // 07-11 08-10 09-08 10-07 11-06 12-05
	// 2030
	21918, 21947, 21977, 22006, 22036, 22066, // 01-04 02-02 03-04 04-02 05-02 06-01
	22095, 22125, 22154, 22184, 22213, 22243, // 06-30 07-30 08-28 09-27 10-26 11-25
	22272,                                    // 12-24
	// 2031
	22302, 22331, 22361, 22390, 22420, 22449, // 01-23 02-21 03-23 04-21 05-21 06-19
	22479, 22509, 22538, 22568, 22597, 22627, // 07-19 08-18 09-16 10-16 11-14 12-14
	// 2032
	22656, 22686, 22715, 22745, 22774, 22804, // 01-12 02-11 03-11 04-10 05-09 06-08
	22833, 22863, 22892, 22922, 22952, 22981, // 07-07 08-06 09-04 10-04 11-03 12-02
	// 2033
	23011, 23040, 23070, 23099, 23129, 23158, // 01-01 01-30 03-01 03-30 04-29 05-28
	23187, 23217, 23246, 23276, 23306, 23336, // 06-26 07-26 08-24 09-23 10-23 11-22
	23365,                                    // 12-21
	// 2034
	23395, 23424, 23454, 23483, 23513, 23542, // 01-20 02-18 03-20 04-18 05-18 06-16
	23571, 23601, 23630, 23660, 23690, 23719, // 07-15 08-14 09-12 10-12 11-11 12-10
	// 2035
	23749, 23779, 23808, 23838, 23867, 23897, // 01-09 02-08 03-09 04-08 05-07 06-06
	23926, 23955, 23985, 24014, 24044, 24073, // 07-05 08-03 09-02 10-01 10-31 11-29
	24103,                                    // 12-29
}
