package search

import (
	"time"

	domart "github.com/kailas-cloud/articledex/internal/domain/article"
	"github.com/kailas-cloud/articledex/internal/domain/language"
)

// sampleCorpora returns the built-in per-language demo articles the
// fallback matcher runs over when no stored articles are reachable.
func sampleCorpora() map[string][]domart.Article {
	var none time.Time
	return map[string][]domart.Article{
		language.English.Code(): {
			domart.Reconstruct(1, "Introduction to C#",
				"C# is a modern, object-oriented programming language developed by Microsoft.",
				"", "", none, none),
			domart.Reconstruct(2, "ASP.NET Core MVC",
				"ASP.NET Core MVC is a web framework for building web apps and APIs using the Model-View-Controller design pattern.",
				"", "", none, none),
			domart.Reconstruct(3, "Entity Framework Core",
				"Entity Framework Core is an object-database mapper for .NET that enables developers to work with a database using .NET objects.",
				"", "", none, none),
			domart.Reconstruct(4, "JavaScript Basics",
				"JavaScript is a lightweight, interpreted programming language with object-oriented capabilities.",
				"", "", none, none),
			domart.Reconstruct(5, "Introduction to HTML",
				"HTML (HyperText Markup Language) is the standard markup language for documents designed to be displayed in a web browser.",
				"", "", none, none),
		},
		language.Thai.Code(): {
			domart.Reconstruct(1, "ข้าวมันไก่ สูตรต้นตำรับ",
				"ข้าวมันไก่เป็นอาหารจานเดียวที่ได้รับความนิยมทั่วไทย เสิร์ฟพร้อมน้ำจิ้มรสจัดและน้ำซุปไก่ใสร้อนๆ ถือเป็นเมนูง่ายๆ แต่อร่อยและอิ่มท้อง",
				"สมศักดิ์ ชิมดี", "อาหารจานด่วน", none, none),
			domart.Reconstruct(2, "ต้มยำกุ้ง รสชาติไทยแท้",
				"ต้มยำกุ้งเป็นเมนูขึ้นชื่อของไทย มีรสเผ็ด เปรี้ยว หอมสมุนไพร เช่น ตะไคร้ ใบมะกรูด และพริกสด นิยมใส่กุ้งตัวใหญ่เพื่อความกลมกล่อม",
				"สมหญิง รักกิน", "อาหารทะเล", none, none),
			domart.Reconstruct(3, "แกงเขียวหวานไก่ หอมกะทิกลมกล่อม",
				"แกงเขียวหวานเป็นแกงไทยที่มีรสเผ็ดหวานเล็กน้อย มักใส่ไก่ มะเขือเปราะ และใบโหระพา นิยมกินคู่กับข้าวสวยหรือขนมจีน",
				"อนันต์ อร่อยดี", "อาหารภาคกลาง", none, none),
			domart.Reconstruct(4, "ผัดไทย รสชาติระดับโลก",
				"ผัดไทยเป็นอาหารจานเส้นที่มีชื่อเสียงไปทั่วโลก ทำจากเส้นจันท์ผัดกับไข่ เต้าหู้ กุ้งแห้ง และซอสเปรี้ยวหวาน โรยถั่วลิสงและมะนาว",
				"วราภรณ์ ชวนชิม", "อาหารจานด่วน", none, none),
			domart.Reconstruct(5, "ข้าวซอย อาหารเหนือหอมเครื่องแกง",
				"ข้าวซอยเป็นเมนูเส้นของภาคเหนือ ใช้เส้นบะหมี่ไข่ในน้ำแกงกะทิรสจัดจ้าน ใส่ไก่หรือลูกชิ้น โรยหอมเจียวและเส้นกรอบ",
				"ศุภชัย ลิ้มลอง", "อาหารภาคเหนือ", none, none),
		},
	}
}
