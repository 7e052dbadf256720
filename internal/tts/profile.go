package tts

import "fmt"

// Profile 是音色档位。档位集合固定，由各后端映射为具体合成参数。
type Profile string

const (
	ProfileDefault Profile = "default"
	ProfileFemale  Profile = "female"
	ProfileMale    Profile = "male"
)

// Profiles 返回全部支持的音色档位。
func Profiles() []Profile {
	return []Profile{ProfileDefault, ProfileFemale, ProfileMale}
}

// ParseProfile 解析音色档位字符串。空字符串视为 default。
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case "":
		return ProfileDefault, nil
	case ProfileDefault, ProfileFemale, ProfileMale:
		return Profile(s), nil
	default:
		return "", fmt.Errorf("未知的音色档位: %q（支持 default、female、male）", s)
	}
}
