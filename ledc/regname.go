package ledc

import "ledc-go/x/conv"

// RegName names a register offset the way the datasheet does, e.g.
// "lsch3_conf0" or "hstimer1_conf". Unmapped offsets come back as raw hex.
// Meant for write-log traces; allocation is fine here.
func RegName(off uint32) string {
	switch {
	case off < lsChanBase:
		return chanRegName("hsch", off-hsChanBase)
	case off < hsTimerBase:
		return chanRegName("lsch", off-lsChanBase)
	case off < lsTimerBase:
		return timerRegName("hstimer", off-hsTimerBase)
	case off < regIntRaw:
		return timerRegName("lstimer", off-lsTimerBase)
	case off == regIntRaw:
		return "int_raw"
	case off == regIntSt:
		return "int_st"
	case off == regIntEna:
		return "int_ena"
	case off == regIntClr:
		return "int_clr"
	case off == regConf:
		return "conf"
	}
	return rawName(off)
}

func chanRegName(bank string, rel uint32) string {
	n, reg := rel/chanStride, rel%chanStride
	var suffix string
	switch reg {
	case regChConf0:
		suffix = "_conf0"
	case regChHPoint:
		suffix = "_hpoint"
	case regChDuty:
		suffix = "_duty"
	case regChConf1:
		suffix = "_conf1"
	case regChDutyR:
		suffix = "_duty_r"
	default:
		return rawName(rel)
	}
	return bank + string(rune('0'+n)) + suffix
}

func timerRegName(bank string, rel uint32) string {
	n, reg := rel/timerStride, rel%timerStride
	var suffix string
	switch reg {
	case regTimerConf:
		suffix = "_conf"
	case regTimerValue:
		suffix = "_value"
	default:
		return rawName(rel)
	}
	return bank + string(rune('0'+n)) + suffix
}

func rawName(off uint32) string {
	var buf [8]byte
	return "reg_0x" + string(conv.U32Hex(buf[:], off))
}
