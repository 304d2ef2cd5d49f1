package consts

import "golang.org/x/sys/cpu"

// IsBigEndian reports whether words can be loaded from message bytes
// without swapping.
var IsBigEndian = cpu.IsBigEndian
