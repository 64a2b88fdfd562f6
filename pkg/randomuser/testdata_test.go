package randomuser_test

const validBody = `{
  "results": [
    {
      "gender": "female",
      "name": {"title": "Ms", "first": "Ann", "last": "Lee"},
      "location": {"city": "Reno", "country": "United States", "postcode": 89501},
      "email": "ann.lee@example.com",
      "login": {"uuid": "0f0d8d4e-7f44-4c9b-9e0d-0c9f6a3d1a11"},
      "dob": {"date": "1994-02-12T10:00:00.000Z", "age": 30},
      "phone": "(775) 555-0101",
      "picture": {"large": "https://randomuser.me/api/portraits/women/1.jpg"},
      "nat": "US"
    },
    {
      "name": {"first": "Bo", "last": "Ng"},
      "location": {"city": "Hull", "country": "United Kingdom", "postcode": "HU1 1AA"},
      "email": "bo.ng@example.com",
      "login": {"uuid": "5b8a3c2e-1d7f-4e0b-8f2a-6c1d9e3b7a22"},
      "dob": {"age": 22},
      "phone": "016977 0123",
      "picture": {"large": "https://randomuser.me/api/portraits/men/2.jpg"},
      "nat": "GB"
    }
  ],
  "info": {"seed": "abc", "results": 2, "page": 1, "version": "1.4"}
}`
