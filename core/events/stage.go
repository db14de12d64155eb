package events

import "github.com/koscakluka/lakshmi-path/core/regions"

const KindStageChanged Kind = "stage.changed"

// StageChanged reports a stage transition. Stages are identified by name.
type StageChanged struct {
	Base
	From   string
	To     string
	Region regions.Region
}

func NewStageChanged(from, to string, region regions.Region) StageChanged {
	return StageChanged{Base: NewBase(KindStageChanged), From: from, To: to, Region: region}
}
