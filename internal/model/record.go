package model

// RequirementCategory 签证要求类别
// 开放枚举：数据源可能出现固定四类之外的新类别，下游必须能处理
type RequirementCategory string

const (
	RequirementVisaFree       RequirementCategory = "visa_free"       // 免签
	RequirementVisaOnArrival  RequirementCategory = "visa_on_arrival" // 落地签
	RequirementElectronicVisa RequirementCategory = "electronic_visa" // 电子签
	RequirementVisaRequired   RequirementCategory = "visa_required"   // 需签证
)

// Record 一条签证要求记录
// 数据集是 origin × destination 的全组合，每对恰好一条记录
type Record struct {
	Origin      string              `json:"origin"`      // 护照签发国
	Destination string              `json:"destination"` // 目的地国家
	Requirement RequirementCategory `json:"requirement"` // 签证要求类别
}
