// Copyright 2025 The StoreLocator Authors
// SPDX-License-Identifier: Apache-2.0

package settings

// Option is a display name and the code submitted for it.
type Option struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Languages are the response languages supported by the geocoding API. The
// first entry is the empty "no preference" choice.
var Languages = []Option{
	{Name: "Select your language", Code: ""},
	{Name: "English", Code: "en"},
	{Name: "Arabic", Code: "ar"},
	{Name: "Basque", Code: "eu"},
	{Name: "Bulgarian", Code: "bg"},
	{Name: "Bengali", Code: "bn"},
	{Name: "Catalan", Code: "ca"},
	{Name: "Czech", Code: "cs"},
	{Name: "Danish", Code: "da"},
	{Name: "German", Code: "de"},
	{Name: "Greek", Code: "el"},
	{Name: "English (Australian)", Code: "en-AU"},
	{Name: "English (Great Britain)", Code: "en-GB"},
	{Name: "Spanish", Code: "es"},
	{Name: "Farsi", Code: "fa"},
	{Name: "Finnish", Code: "fi"},
	{Name: "Filipino", Code: "fil"},
	{Name: "French", Code: "fr"},
	{Name: "Galician", Code: "gl"},
	{Name: "Gujarati", Code: "gu"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Croatian", Code: "hr"},
	{Name: "Hungarian", Code: "hu"},
	{Name: "Indonesian", Code: "id"},
	{Name: "Italian", Code: "it"},
	{Name: "Hebrew", Code: "iw"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Kannada", Code: "kn"},
	{Name: "Korean", Code: "ko"},
	{Name: "Lithuanian", Code: "lt"},
	{Name: "Latvian", Code: "lv"},
	{Name: "Malayalam", Code: "ml"},
	{Name: "Marathi", Code: "mr"},
	{Name: "Dutch", Code: "nl"},
	{Name: "Norwegian", Code: "no"},
	{Name: "Norwegian Nynorsk", Code: "nn"},
	{Name: "Polish", Code: "pl"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Portuguese (Brazil)", Code: "pt-BR"},
	{Name: "Portuguese (Portugal)", Code: "pt-PT"},
	{Name: "Romanian", Code: "ro"},
	{Name: "Russian", Code: "ru"},
	{Name: "Slovak", Code: "sk"},
	{Name: "Slovenian", Code: "sl"},
	{Name: "Serbian", Code: "sr"},
	{Name: "Swedish", Code: "sv"},
	{Name: "Tagalog", Code: "tl"},
	{Name: "Tamil", Code: "ta"},
	{Name: "Telugu", Code: "te"},
	{Name: "Thai", Code: "th"},
	{Name: "Turkish", Code: "tr"},
	{Name: "Ukrainian", Code: "uk"},
	{Name: "Vietnamese", Code: "vi"},
	{Name: "Chinese (Simplified)", Code: "zh-CN"},
	{Name: "Chinese (Traditional)", Code: "zh-TW"},
}

// Regions are the region biasing codes accepted by the geocoding API.
var Regions = []Option{
	{Name: "Select your region", Code: ""},
	{Name: "Afghanistan", Code: "af"},
	{Name: "Albania", Code: "al"},
	{Name: "Algeria", Code: "dz"},
	{Name: "American Samoa", Code: "as"},
	{Name: "Andorra", Code: "ad"},
	{Name: "Anguilla", Code: "ai"},
	{Name: "Angola", Code: "ao"},
	{Name: "Antigua and Barbuda", Code: "ag"},
	{Name: "Argentina", Code: "ar"},
	{Name: "Armenia", Code: "am"},
	{Name: "Aruba", Code: "aw"},
	{Name: "Australia", Code: "au"},
	{Name: "Austria", Code: "at"},
	{Name: "Azerbaijan", Code: "az"},
	{Name: "Bahamas", Code: "bs"},
	{Name: "Bahrain", Code: "bh"},
	{Name: "Bangladesh", Code: "bd"},
	{Name: "Barbados", Code: "bb"},
	{Name: "Belarus", Code: "by"},
	{Name: "Belgium", Code: "be"},
	{Name: "Belize", Code: "bz"},
	{Name: "Benin", Code: "bj"},
	{Name: "Bermuda", Code: "bm"},
	{Name: "Bhutan", Code: "bt"},
	{Name: "Bolivia", Code: "bo"},
	{Name: "Bosnia and Herzegovina", Code: "ba"},
	{Name: "Botswana", Code: "bw"},
	{Name: "Brazil", Code: "br"},
	{Name: "British Indian Ocean Territory", Code: "io"},
	{Name: "Brunei", Code: "bn"},
	{Name: "Bulgaria", Code: "bg"},
	{Name: "Burkina Faso", Code: "bf"},
	{Name: "Burundi", Code: "bi"},
	{Name: "Cambodia", Code: "kh"},
	{Name: "Cameroon", Code: "cm"},
	{Name: "Canada", Code: "ca"},
	{Name: "Cape Verde", Code: "cv"},
	{Name: "Cayman Islands", Code: "ky"},
	{Name: "Central African Republic", Code: "cf"},
	{Name: "Chad", Code: "td"},
	{Name: "Chile", Code: "cl"},
	{Name: "China", Code: "cn"},
	{Name: "Christmas Island", Code: "cx"},
	{Name: "Cocos Islands", Code: "cc"},
	{Name: "Colombia", Code: "co"},
	{Name: "Comoros", Code: "km"},
	{Name: "Congo", Code: "cg"},
	{Name: "Costa Rica", Code: "cr"},
	{Name: "Côte d'Ivoire", Code: "ci"},
	{Name: "Croatia", Code: "hr"},
	{Name: "Cuba", Code: "cu"},
	{Name: "Czech Republic", Code: "cz"},
	{Name: "Denmark", Code: "dk"},
	{Name: "Djibouti", Code: "dj"},
	{Name: "Democratic Republic of the Congo", Code: "cd"},
	{Name: "Dominica", Code: "dm"},
	{Name: "Dominican Republic", Code: "do"},
	{Name: "Ecuador", Code: "ec"},
	{Name: "Egypt", Code: "eg"},
	{Name: "El Salvador", Code: "sv"},
	{Name: "Equatorial Guinea", Code: "gq"},
	{Name: "Eritrea", Code: "er"},
	{Name: "Estonia", Code: "ee"},
	{Name: "Ethiopia", Code: "et"},
	{Name: "Fiji", Code: "fj"},
	{Name: "Finland", Code: "fi"},
	{Name: "France", Code: "fr"},
	{Name: "French Guiana", Code: "gf"},
	{Name: "Gabon", Code: "ga"},
	{Name: "Gambia", Code: "gm"},
	{Name: "Germany", Code: "de"},
	{Name: "Ghana", Code: "gh"},
	{Name: "Greenland", Code: "gl"},
	{Name: "Greece", Code: "gr"},
	{Name: "Grenada", Code: "gd"},
	{Name: "Guam", Code: "gu"},
	{Name: "Guadeloupe", Code: "gp"},
	{Name: "Guatemala", Code: "gt"},
	{Name: "Guinea", Code: "gn"},
	{Name: "Guinea-Bissau", Code: "gw"},
	{Name: "Haiti", Code: "ht"},
	{Name: "Honduras", Code: "hn"},
	{Name: "Hong Kong", Code: "hk"},
	{Name: "Hungary", Code: "hu"},
	{Name: "Iceland", Code: "is"},
	{Name: "India", Code: "in"},
	{Name: "Indonesia", Code: "id"},
	{Name: "Iran", Code: "ir"},
	{Name: "Iraq", Code: "iq"},
	{Name: "Ireland", Code: "ie"},
	{Name: "Israel", Code: "il"},
	{Name: "Italy", Code: "it"},
	{Name: "Jamaica", Code: "jm"},
	{Name: "Japan", Code: "jp"},
	{Name: "Jordan", Code: "jo"},
	{Name: "Kazakhstan", Code: "kz"},
	{Name: "Kenya", Code: "ke"},
	{Name: "Kuwait", Code: "kw"},
	{Name: "Kyrgyzstan", Code: "kg"},
	{Name: "Laos", Code: "la"},
	{Name: "Latvia", Code: "lv"},
	{Name: "Lebanon", Code: "lb"},
	{Name: "Lesotho", Code: "ls"},
	{Name: "Liberia", Code: "lr"},
	{Name: "Libya", Code: "ly"},
	{Name: "Liechtenstein", Code: "li"},
	{Name: "Lithuania", Code: "lt"},
	{Name: "Luxembourg", Code: "lu"},
	{Name: "Macau", Code: "mo"},
	{Name: "Macedonia", Code: "mk"},
	{Name: "Madagascar", Code: "mg"},
	{Name: "Malawi", Code: "mw"},
	{Name: "Malaysia ", Code: "my"},
	{Name: "Mali", Code: "ml"},
	{Name: "Marshall Islands", Code: "mh"},
	{Name: "Martinique", Code: "mq"},
	{Name: "Mauritania", Code: "mr"},
	{Name: "Mauritius", Code: "mu"},
	{Name: "Mexico", Code: "mx"},
	{Name: "Micronesia", Code: "fm"},
	{Name: "Moldova", Code: "md"},
	{Name: "Monaco", Code: "mc"},
	{Name: "Mongolia", Code: "mn"},
	{Name: "Montenegro", Code: "me"},
	{Name: "Montserrat", Code: "ms"},
	{Name: "Morocco", Code: "ma"},
	{Name: "Mozambique", Code: "mz"},
	{Name: "Myanmar", Code: "mm"},
	{Name: "Namibia", Code: "na"},
	{Name: "Nauru", Code: "nr"},
	{Name: "Nepal", Code: "np"},
	{Name: "Netherlands", Code: "nl"},
	{Name: "Netherlands Antilles", Code: "an"},
	{Name: "New Zealand", Code: "nz"},
	{Name: "Nicaragua", Code: "ni"},
	{Name: "Niger", Code: "ne"},
	{Name: "Nigeria", Code: "ng"},
	{Name: "Niue", Code: "nu"},
	{Name: "Northern Mariana Islands", Code: "mp"},
	{Name: "Norway", Code: "no"},
	{Name: "Oman", Code: "om"},
	{Name: "Pakistan", Code: "pk"},
	{Name: "Panama", Code: "pa"},
	{Name: "Papua New Guinea", Code: "pg"},
	{Name: "Paraguay", Code: "py"},
	{Name: "Peru", Code: "pe"},
	{Name: "Philippines", Code: "ph"},
	{Name: "Pitcairn Islands", Code: "pn"},
	{Name: "Poland", Code: "pl"},
	{Name: "Portugal", Code: "pt"},
	{Name: "Qatar", Code: "qa"},
	{Name: "Reunion", Code: "re"},
	{Name: "Romania", Code: "ro"},
	{Name: "Russia", Code: "ru"},
	{Name: "Rwanda", Code: "rw"},
	{Name: "Saint Helena", Code: "sh"},
	{Name: "Saint Kitts and Nevis", Code: "kn"},
	{Name: "Saint Vincent and the Grenadines", Code: "vc"},
	{Name: "Saint Lucia", Code: "lc"},
	{Name: "Samoa", Code: "ws"},
	{Name: "San Marino", Code: "sm"},
	{Name: "São Tomé and Príncipe", Code: "st"},
	{Name: "Saudi Arabia", Code: "sa"},
	{Name: "Senegal", Code: "sn"},
	{Name: "Serbia", Code: "rs"},
	{Name: "Seychelles", Code: "sc"},
	{Name: "Sierra Leone", Code: "sl"},
	{Name: "Singapore", Code: "sg"},
	{Name: "Slovakia", Code: "si"},
	{Name: "Solomon Islands", Code: "sb"},
	{Name: "Somalia", Code: "so"},
	{Name: "South Africa", Code: "za"},
	{Name: "South Korea", Code: "kr"},
	{Name: "Spain", Code: "es"},
	{Name: "Sri Lanka", Code: "lk"},
	{Name: "Sudan", Code: "sd"},
	{Name: "Swaziland", Code: "sz"},
	{Name: "Sweden", Code: "se"},
	{Name: "Switzerland", Code: "ch"},
	{Name: "Syria", Code: "sy"},
	{Name: "Taiwan", Code: "tw"},
	{Name: "Tajikistan", Code: "tj"},
	{Name: "Tanzania", Code: "tz"},
	{Name: "Thailand", Code: "th"},
	{Name: "Timor-Leste", Code: "tl"},
	{Name: "Tokelau", Code: "tk"},
	{Name: "Togo", Code: "tg"},
	{Name: "Tonga", Code: "to"},
	{Name: "Trinidad and Tobago", Code: "tt"},
	{Name: "Tunisia", Code: "tn"},
	{Name: "Turkey", Code: "tr"},
	{Name: "Turkmenistan", Code: "tm"},
	{Name: "Tuvalu", Code: "tv"},
	{Name: "Uganda", Code: "ug"},
	{Name: "Ukraine", Code: "ua"},
	{Name: "United Arab Emirates", Code: "ae"},
	{Name: "United Kingdom", Code: "gb"},
	{Name: "United States", Code: "us"},
	{Name: "Uruguay", Code: "uy"},
	{Name: "Uzbekistan", Code: "uz"},
	{Name: "Wallis Futuna", Code: "wf"},
	{Name: "Venezuela", Code: "ve"},
	{Name: "Vietnam", Code: "vn"},
	{Name: "Yemen", Code: "ye"},
	{Name: "Zambia", Code: "zm"},
	{Name: "Zimbabwe", Code: "zw"},
}

// FindOption returns the option with the given code.
func FindOption(list []Option, code string) (Option, bool) {
	for _, o := range list {
		if o.Code == code {
			return o, true
		}
	}

	return Option{}, false
}
