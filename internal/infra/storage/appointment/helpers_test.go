package appointment

import "github.com/m04kA/SMC-SiteOpsService/pkg/types"

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func mustTimeAdd(s string, minutes int) types.TimeString {
	ts, err := mustTime(s).AddMinutes(minutes)
	if err != nil {
		panic(err)
	}
	return ts
}
