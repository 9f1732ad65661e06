package services

import "github.com/dharanikaviyav/Invoice-Management/internal/models"

// seedCustomers returns a fresh copy of the canonical customer seed set
// written on first access (and on legacy re-seed). Callers get a copy so
// the canonical data cannot be mutated.
func seedCustomers() []models.Customer {
	return []models.Customer{
		{ID: "c1", Name: "Aarav Enterprises", Email: "contact@aaravent.in", Address: "101, MG Road, Bengaluru, KA 560001"},
		{ID: "c2", Name: "Aditya Infotech", Email: "info@adityatech.com", Address: "Unit 45, Cyber City, Gurugram, HR 122002"},
		{ID: "c3", Name: "Akash Logistics", Email: "dispatch@akashlogistics.com", Address: "Plot 12, Transport Nagar, Pune, MH 411044"},
		{ID: "c4", Name: "Aman Traders", Email: "sales@amantraders.co.in", Address: "56, Chandni Chowk, New Delhi, DL 110006"},
		{ID: "c5", Name: "Anirudh Consultants", Email: "hr@anirudhcons.com", Address: "B-Wing, Mittal Towers, Nariman Point, Mumbai, MH 400021"},
		{ID: "c6", Name: "Arjun Constructions", Email: "projects@arjunconst.com", Address: "Road No. 12, Banjara Hills, Hyderabad, TS 500034"},
		{ID: "c7", Name: "Ashwin Electronics", Email: "support@ashwinelec.com", Address: "Lamington Road, Mumbai, MH 400007"},
		{ID: "c8", Name: "Bhavesh Textiles", Email: "orders@bhaveshtex.com", Address: "Ring Road, Surat, GJ 395002"},
		{ID: "c9", Name: "Chetan Hardwares", Email: "store@chetanhardware.com", Address: "Lohiya Nagar, Ghaziabad, UP 201001"},
		{ID: "c10", Name: "Darshan Travels", Email: "bookings@darshantravels.com", Address: "Navrangpura, Ahmedabad, GJ 380009"},
		{ID: "c11", Name: "Deepak Associates", Email: "legal@deepakassoc.com", Address: "Connaught Place, New Delhi, DL 110001"},
		{ID: "c12", Name: "Dev Industries", Email: "factory@devind.com", Address: "Peenya Industrial Area, Bengaluru, KA 560058"},
		{ID: "c13", Name: "Dinesh Chemicals", Email: "lab@dineshchem.com", Address: "GIDC, Vadodara, GJ 390010"},
		{ID: "c14", Name: "Gaurav Solutions", Email: "it@gauravsol.com", Address: "Salt Lake Sector V, Kolkata, WB 700091"},
		{ID: "c15", Name: "Harish Automobiles", Email: "service@harishauto.com", Address: "Anna Salai, Chennai, TN 600002"},
		{ID: "c16", Name: "Karthik Systems", Email: "admin@karthiksys.com", Address: "Electronic City, Bengaluru, KA 560100"},
		{ID: "c17", Name: "Krishna Foods", Email: "orders@krishnafoods.com", Address: "Lalbagh Road, Lucknow, UP 226001"},
		{ID: "c18", Name: "Mahesh Steel Works", Email: "supply@maheshsteel.com", Address: "Industrial Area, Ludhiana, PB 141003"},
		{ID: "c19", Name: "Manish Marketing", Email: "promo@manishmkt.com", Address: "C.G. Road, Ahmedabad, GJ 380006"},
		{ID: "c20", Name: "Mohit Mobiles", Email: "sales@mohitmobiles.com", Address: "Karol Bagh, New Delhi, DL 110005"},
		{ID: "c21", Name: "Nikhil Interiors", Email: "design@nikhilinteriors.com", Address: "Koregaon Park, Pune, MH 411001"},
		{ID: "c22", Name: "Prakash Printers", Email: "print@prakashpress.com", Address: "Sivakasi, Tamil Nadu, TN 626123"},
		{ID: "c23", Name: "Rahul Agencies", Email: "distributor@rahulagencies.com", Address: "Station Road, Jaipur, RJ 302006"},
		{ID: "c24", Name: "Rajesh Exports", Email: "global@rajeshexp.com", Address: "SEZ, Noida, UP 201305"},
		{ID: "c25", Name: "Ramesh General Store", Email: "shop@rameshstore.com", Address: "T. Nagar, Chennai, TN 600017"},
		{ID: "c26", Name: "Rohit Pharma", Email: "meds@rohitpharma.com", Address: "Baddi, Himachal Pradesh, HP 173205"},
		{ID: "c27", Name: "Sandeep Security", Email: "guards@sandeepsec.com", Address: "Indiranagar, Bengaluru, KA 560038"},
		{ID: "c28", Name: "Sanjay Garments", Email: "fashion@sanjaygarments.com", Address: "Fashion Street, Mumbai, MH 400020"},
		{ID: "c29", Name: "Shankar Services", Email: "repair@shankarservices.com", Address: "Main Road, Ranchi, JH 834001"},
		{ID: "c30", Name: "Suresh Sweets", Email: "mithai@sureshsweets.com", Address: "Bikaner, Rajasthan, RJ 334001"},
		{ID: "c31", Name: "Varun Beverages", Email: "dist@varunbev.com", Address: "Phase III, Gurgaon, HR 122010"},
		{ID: "c32", Name: "Venkatesh Hardware", Email: "tools@venkatesh.com", Address: "Chickpet, Bengaluru, KA 560053"},
		{ID: "c33", Name: "Vijay Motors", Email: "cars@vijaymotors.com", Address: "Jubilee Hills, Hyderabad, TS 500033"},
		{ID: "c34", Name: "Vinay Vegetables", Email: "fresh@vinayveg.com", Address: "Koyambedu Market, Chennai, TN 600107"},
		{ID: "c35", Name: "Aarti Designs", Email: "creative@aartidesigns.com", Address: "Hauz Khas Village, New Delhi, DL 110016"},
		{ID: "c36", Name: "Ananya Events", Email: "party@ananyaevents.com", Address: "Juhu Tara Road, Mumbai, MH 400049"},
		{ID: "c37", Name: "Anjali Arts", Email: "gallery@anjaliarts.com", Address: "Fort Kochi, Kochi, KL 682001"},
		{ID: "c38", Name: "Bhavya Boutiques", Email: "style@bhavyaboutique.com", Address: "Brigade Road, Bengaluru, KA 560001"},
		{ID: "c39", Name: "Chitra Studios", Email: "photo@chitrastudios.com", Address: "Kodambakkam, Chennai, TN 600024"},
		{ID: "c40", Name: "Deepika Decor", Email: "home@deepikadecor.com", Address: "Banjara Hills, Hyderabad, TS 500034"},
		{ID: "c41", Name: "Divya Daily Needs", Email: "grocery@divyastore.com", Address: "Sector 18, Noida, UP 201301"},
		{ID: "c42", Name: "Gayathri Gifts", Email: "corp@gayathrigifts.com", Address: "Mylapore, Chennai, TN 600004"},
		{ID: "c43", Name: "Kavya Kitchens", Email: "food@kavyakitchens.com", Address: "Indore, Madhya Pradesh, MP 452001"},
		{ID: "c44", Name: "Keerthi Consultancy", Email: "jobs@keerthicons.com", Address: "Technopark, Trivandrum, KL 695581"},
		{ID: "c45", Name: "Lakshmi Gold House", Email: "jewels@lakshmigold.com", Address: "Thrissur, Kerala, KL 680001"},
		{ID: "c46", Name: "Meena Markets", Email: "retail@meenamarkets.com", Address: "Paltan Bazar, Guwahati, AS 781008"},
		{ID: "c47", Name: "Nandhini Nursery", Email: "plants@nandhininursery.com", Address: "Whitefield, Bengaluru, KA 560066"},
		{ID: "c48", Name: "Neha Networks", Email: "net@nehanetworks.com", Address: "Hinjewadi, Pune, MH 411057"},
		{ID: "c49", Name: "Pooja Packaging", Email: "boxes@poojapack.com", Address: "Okhla Ind. Estate, New Delhi, DL 110020"},
		{ID: "c50", Name: "Priya Publications", Email: "books@priyapub.com", Address: "College Street, Kolkata, WB 700009"},
		{ID: "c51", Name: "Radhika Real Estate", Email: "homes@radhikarealty.com", Address: "Vashi, Navi Mumbai, MH 400703"},
		{ID: "c52", Name: "Rekha Recipes", Email: "cook@rekharecipes.com", Address: "Civil Lines, Jaipur, RJ 302006"},
		{ID: "c53", Name: "Sandhya Salons", Email: "beauty@sandhyasalons.com", Address: "Model Town, Ludhiana, PB 141002"},
		{ID: "c54", Name: "Saranya Silks", Email: "sarees@saranyasilks.com", Address: "Kanchipuram, Tamil Nadu, TN 631501"},
		{ID: "c55", Name: "Shalini Shoes", Email: "footwear@shalinishoes.com", Address: "Agra, Uttar Pradesh, UP 282001"},
		{ID: "c56", Name: "Shreya Shipping", Email: "cargo@shreyaship.com", Address: "Kandla Port, Gujarat, GJ 370210"},
		{ID: "c57", Name: "Sita Sourcing", Email: "vendor@sitasourcing.com", Address: "Tirupur, Tamil Nadu, TN 641604"},
		{ID: "c58", Name: "Sneha Software", Email: "dev@snehasoft.com", Address: "Madhapur, Hyderabad, TS 500081"},
		{ID: "c59", Name: "Swathi Spices", Email: "export@swathispices.com", Address: "Guntur, Andhra Pradesh, AP 522004"},
		{ID: "c60", Name: "Uma Udyog", Email: "mfg@umaudyog.com", Address: "Howrah, West Bengal, WB 711101"},
		{ID: "c61", Name: "Vaishnavi Ventures", Email: "invest@vaishnaviven.com", Address: "Bandra Kurla Complex, Mumbai, MH 400051"},
		{ID: "c62", Name: "Vidya Vihar Schools", Email: "admin@vidyavihar.edu", Address: "Sikar, Rajasthan, RJ 332001"},
		{ID: "c63", Name: "Yamini Yarns", Email: "textile@yaminiyarns.com", Address: "Coimbatore, Tamil Nadu, TN 641001"},
		{ID: "c64", Name: "Zoya Zones", Email: "arch@zoyazones.com", Address: "DLF Phase 5, Gurgaon, HR 122009"},
		{ID: "c65", Name: "Aadi Automations", Email: "robotics@aadiauto.com", Address: "Pimpri-Chinchwad, Pune, MH 411018"},
		{ID: "c66", Name: "Akshay Agro", Email: "seeds@akshayagro.com", Address: "Nasik, Maharashtra, MH 422001"},
		{ID: "c67", Name: "Amrit Ayurveda", Email: "wellness@amritayurveda.com", Address: "Haridwar, Uttarakhand, UK 249401"},
		{ID: "c68", Name: "Arya Architects", Email: "plan@aryaarch.com", Address: "Sector 17, Chandigarh, CH 160017"},
		{ID: "c69", Name: "Chaitanya Chemicals", Email: "solvents@chaitanyachem.com", Address: "Ankleshwar, Gujarat, GJ 393002"},
		{ID: "c70", Name: "Devika Dairy", Email: "milk@devikadairy.com", Address: "Anand, Gujarat, GJ 388001"},
		{ID: "c71", Name: "Harsha Hotels", Email: "stay@harshahotels.com", Address: "Udaipur, Rajasthan, RJ 313001"},
		{ID: "c72", Name: "Ishan Instruments", Email: "labgear@ishaninst.com", Address: "Ambala Cantt, Haryana, HR 133001"},
		{ID: "c73", Name: "Jai Jute Works", Email: "bags@jaijute.com", Address: "Barrackpore, Kolkata, WB 700120"},
		{ID: "c74", Name: "Kiran Ceramics", Email: "tiles@kiranceramics.com", Address: "Morbi, Gujarat, GJ 363641"},
		{ID: "c75", Name: "Krithika Crafts", Email: "handicraft@krithika.com", Address: "Mysore, Karnataka, KA 570001"},
		{ID: "c76", Name: "Manju Motors", Email: "bikes@manjumotors.com", Address: "Bhopal, Madhya Pradesh, MP 462001"},
		{ID: "c77", Name: "Neel Networks", Email: "wifi@neelnetworks.com", Address: "Panaji, Goa, GA 403001"},
		{ID: "c78", Name: "Nirmal Nursery", Email: "green@nirmalplants.com", Address: "Dehradun, Uttarakhand, UK 248001"},
		{ID: "c79", Name: "Pavan Power", Email: "solar@pavanpower.com", Address: "Jaisalmer, Rajasthan, RJ 345001"},
		{ID: "c80", Name: "Ritu Retails", Email: "mall@rituretails.com", Address: "Saket, New Delhi, DL 110017"},
		{ID: "c81", Name: "Sagar Seafoods", Email: "export@sagarsea.com", Address: "Veraval, Gujarat, GJ 362265"},
		{ID: "c82", Name: "Sakshi Solar", Email: "energy@sakshisolar.com", Address: "Rewa, Madhya Pradesh, MP 486001"},
		{ID: "c83", Name: "Shashi Sports", Email: "cricket@shashisports.com", Address: "Meerut, Uttar Pradesh, UP 250002"},
		{ID: "c84", Name: "Shivani Steels", Email: "rods@shivanisteels.com", Address: "Bhilai, Chhattisgarh, CT 490001"},
		{ID: "c85", Name: "Soham Solutions", Email: "consult@sohamsol.com", Address: "Infocity, Bhubaneswar, OD 751024"},
		{ID: "c86", Name: "Tanvi Tech", Email: "app@tanvitech.com", Address: "Kochi, Kerala, KL 682030"},
		{ID: "c87", Name: "Tejas Transport", Email: "trucks@tejastrans.com", Address: "Namakkal, Tamil Nadu, TN 637001"},
		{ID: "c88", Name: "Trisha Textiles", Email: "fabric@trishatex.com", Address: "Panipat, Haryana, HR 132103"},
		{ID: "c89", Name: "Uday Upholstery", Email: "sofa@udayupholstery.com", Address: "Kirti Nagar, New Delhi, DL 110015"},
		{ID: "c90", Name: "Vani Ventures", Email: "startup@vaniventures.com", Address: "HSR Layout, Bengaluru, KA 560102"},
		{ID: "c91", Name: "Balaji Bakers", Email: "cakes@balajibakers.com", Address: "Adyar, Chennai, TN 600020"},
		{ID: "c92", Name: "Ezhil Exports", Email: "ship@ezhilexports.com", Address: "Tuticorin, Tamil Nadu, TN 628004"},
		{ID: "c93", Name: "Ilayaraja Instruments", Email: "music@ilayaraja.com", Address: "Saligramam, Chennai, TN 600093"},
		{ID: "c94", Name: "Kalyani Kalyana Mandapam", Email: "wedding@kalyani.com", Address: "Madurai, Tamil Nadu, TN 625001"},
		{ID: "c95", Name: "Murugan Mills", Email: "oil@muruganmills.com", Address: "Erode, Tamil Nadu, TN 638001"},
		{ID: "c96", Name: "Parvathi Pearls", Email: "gems@parvathipearls.com", Address: "Hyderabad, Telangana, TS 500002"},
		{ID: "c97", Name: "Senthil Supplies", Email: "wholesale@senthil.com", Address: "Salem, Tamil Nadu, TN 636001"},
		{ID: "c98", Name: "Subramanian & Co", Email: "ca@subramanian.com", Address: "Coimbatore, Tamil Nadu, TN 641018"},
		{ID: "c99", Name: "Thirumal Traders", Email: "rice@thirumaltraders.com", Address: "Thanjavur, Tamil Nadu, TN 613001"},
		{ID: "c100", Name: "Yasmin Yarns", Email: "silk@yasminyarns.com", Address: "Varanasi, Uttar Pradesh, UP 221010"},
	}
}

// productCatalog is the static, immutable product price list.
var productCatalog = []models.Product{
	{ID: "p1", Name: "Web Development Services", UnitPrice: 5000.00},
	{ID: "p2", Name: "Consulting Hours", UnitPrice: 2500.00},
	{ID: "p3", Name: "Server Maintenance (Annual)", UnitPrice: 15000.00},
	{ID: "p4", Name: "Cloud Hosting Setup", UnitPrice: 8500.00},
	{ID: "p5", Name: "SEO Optimization Package", UnitPrice: 12000.00},
	{ID: "p6", Name: "Logo Design & Branding", UnitPrice: 6500.00},
	{ID: "p7", Name: "Content Writing (per 1000 words)", UnitPrice: 1500.00},
	{ID: "p8", Name: "Software License (Per User)", UnitPrice: 3500.00},
	{ID: "p9", Name: "On-site Support Visit", UnitPrice: 2000.00},
	{ID: "p10", Name: "Network Installation", UnitPrice: 25000.00},
}
